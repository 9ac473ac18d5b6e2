// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package consensus

import "math/big"

// leaderValuePrecision is the number of bits of precision carried through
// the fixed-point (1-f)^sigma computation. The VRF output itself supplies
// 512 bits of entropy; 256 bits of precision comfortably exceeds what a
// rational comparison against it needs.
const leaderValuePrecision = 256

// IsSlotLeader implements the Praos/TPraos leader-value test: a pool with
// relative stake sigma (relativeStakeNumer/relativeStakeDenom) wins the
// slot lottery with activeSlotCoeff f iff its leader VRF output,
// interpreted as a rational in [0,1), is less than 1 - (1-f)^sigma.
//
// leaderOutput is the raw VRF output hash (OutputSize bytes); it is
// interpreted as a big-endian integer over 2^(8*len(leaderOutput)).
func IsSlotLeader(leaderOutput []byte, activeSlotCoeffNumer, activeSlotCoeffDenom uint64, relativeStakeNumer, relativeStakeDenom *big.Int) bool {
	outputInt := new(big.Int).SetBytes(leaderOutput)
	outputSpace := new(big.Int).Lsh(big.NewInt(1), uint(len(leaderOutput))*8)
	p := new(big.Float).SetPrec(leaderValuePrecision).Quo(
		new(big.Float).SetInt(outputInt),
		new(big.Float).SetInt(outputSpace),
	)

	f := new(big.Float).SetPrec(leaderValuePrecision).Quo(
		new(big.Float).SetUint64(activeSlotCoeffNumer),
		new(big.Float).SetUint64(activeSlotCoeffDenom),
	)
	oneMinusF := new(big.Float).SetPrec(leaderValuePrecision).Sub(big.NewFloat(1), f)

	sigma := new(big.Float).SetPrec(leaderValuePrecision).Quo(
		new(big.Float).SetInt(relativeStakeNumer),
		new(big.Float).SetInt(relativeStakeDenom),
	)

	// threshold = 1 - (1-f)^sigma, computed via exp(sigma * ln(1-f)) since
	// big.Float has no fractional Pow; ln/exp implemented below to the same
	// fixed precision.
	lnOneMinusF := naturalLog(oneMinusF)
	exponent := new(big.Float).SetPrec(leaderValuePrecision).Mul(sigma, lnOneMinusF)
	powResult := naturalExp(exponent)
	threshold := new(big.Float).SetPrec(leaderValuePrecision).Sub(big.NewFloat(1), powResult)

	return p.Cmp(threshold) < 0
}

// naturalLog computes ln(x) for 0 < x < 1 via the Mercator/atanh-style
// series ln(x) = 2*atanh((x-1)/(x+1)), which converges quickly for x close
// to 1 (the (1-f) term for realistic active-slot coefficients is within a
// few percent of 1).
func naturalLog(x *big.Float) *big.Float {
	one := big.NewFloat(1)
	num := new(big.Float).SetPrec(leaderValuePrecision).Sub(x, one)
	den := new(big.Float).SetPrec(leaderValuePrecision).Add(x, one)
	z := new(big.Float).SetPrec(leaderValuePrecision).Quo(num, den)

	zz := new(big.Float).SetPrec(leaderValuePrecision).Mul(z, z)
	term := new(big.Float).SetPrec(leaderValuePrecision).Copy(z)
	sum := new(big.Float).SetPrec(leaderValuePrecision).Copy(z)

	for k := 1; k < 60; k++ {
		term = new(big.Float).SetPrec(leaderValuePrecision).Mul(term, zz)
		denom := big.NewFloat(float64(2*k + 1))
		contribution := new(big.Float).SetPrec(leaderValuePrecision).Quo(term, denom)
		sum = new(big.Float).SetPrec(leaderValuePrecision).Add(sum, contribution)
	}
	return new(big.Float).SetPrec(leaderValuePrecision).Mul(sum, big.NewFloat(2))
}

// naturalExp computes e^x via its Taylor series, adequate here because the
// exponent sigma*ln(1-f) is always small and negative for realistic pool
// stakes and active-slot coefficients.
func naturalExp(x *big.Float) *big.Float {
	sum := big.NewFloat(1)
	term := big.NewFloat(1)
	for k := 1; k < 80; k++ {
		term = new(big.Float).SetPrec(leaderValuePrecision).Mul(term, x)
		term = new(big.Float).SetPrec(leaderValuePrecision).Quo(term, big.NewFloat(float64(k)))
		sum = new(big.Float).SetPrec(leaderValuePrecision).Add(sum, term)
	}
	return sum
}
