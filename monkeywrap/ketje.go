package monkeywrap

import "github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"

// Ketje instance parameters: width in bits and payload rate rho in bits.
// All four instances share round counts (nStart=12, nStep=1, nStride=6).
const (
	ketjeNStart  = 12
	ketjeNStep   = 1
	ketjeNStride = 6
)

// NewKetjeJr returns a MonkeyWrap configured as KetjeJr (b=200, rho=16).
func NewKetjeJr() *MonkeyWrap {
	return New(keccakp.New(200), 16, ketjeNStart, ketjeNStep, ketjeNStride)
}

// NewKetjeSr returns a MonkeyWrap configured as KetjeSr (b=400, rho=32).
func NewKetjeSr() *MonkeyWrap {
	return New(keccakp.New(400), 32, ketjeNStart, ketjeNStep, ketjeNStride)
}

// NewKetjeMinor returns a MonkeyWrap configured as KetjeMinor (b=800, rho=128).
func NewKetjeMinor() *MonkeyWrap {
	return New(keccakp.New(800), 128, ketjeNStart, ketjeNStep, ketjeNStride)
}

// NewKetjeMajor returns a MonkeyWrap configured as KetjeMajor (b=1600, rho=256).
func NewKetjeMajor() *MonkeyWrap {
	return New(keccakp.New(1600), 256, ketjeNStart, ketjeNStep, ketjeNStride)
}
