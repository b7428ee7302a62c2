package sigkp747

import (
	"github.com/amirjalali65/sigkp747/field"
	"github.com/amirjalali65/sigkp747/isogeny"
)

func montPoint(x *field.Fp2) isogeny.Point {
	var p isogeny.Point
	field.ToMont2(&p.X, x)
	p.Z.A = field.MontgomeryOne
	return p
}

func montFp2(x *field.Fp2) field.Fp2 {
	var z field.Fp2
	field.ToMont2(&z, x)
	return z
}

// degree4Setup initializes the projective curve constants for a walk
// starting from the base curve (A=0, C=1): A24plus=1, C24=2, which is
// (A+2C, 4C) = (2, 4) scaled by 1/2.
func degree4Setup() (A24plus, C24 field.Fp2) {
	A24plus.A = field.MontgomeryOne
	field.Add2(&C24, &A24plus, &A24plus)
	return
}

// degree3Setup initializes A24minus=A-2, A24plus=A+2 for a walk starting
// from the base curve.
func degree3Setup() (A24minus, A24plus field.Fp2) {
	A24plus.A = field.MontgomeryOne
	field.Add2(&A24plus, &A24plus, &A24plus)
	field.Neg2(&A24minus, &A24plus)
	return
}

// curveFromBasisDeg4 recovers A24plus=A+2C, C24=4C (C=1) from a basis whose
// images define the current curve, for a participant about to walk a
// degree-2^2 or degree-5 isogeny.
func curveFromBasisDeg4(xP, xQ, xR *field.Fp2) (A, A24plus, C24 field.Fp2) {
	isogeny.GetA(xP, xQ, xR, &A)
	var one field.Fp2
	one.A = field.MontgomeryOne
	field.Add2(&C24, &one, &one)
	field.Add2(&A24plus, &A, &C24)
	field.Add2(&C24, &C24, &C24)
	return
}

// curveFromBasisDeg3 recovers A24minus=A-2C, A24plus=A+2C (C=1) from a basis
// whose images define the current curve, for a participant about to walk a
// degree-3 isogeny.
func curveFromBasisDeg3(xP, xQ, xR *field.Fp2) (A, A24minus, A24plus field.Fp2) {
	isogeny.GetA(xP, xQ, xR, &A)
	var two field.Fp2
	two.A = field.MontgomeryOne
	field.Add2(&two, &two, &two)
	field.Add2(&A24plus, &A, &two)
	field.Sub2(&A24minus, &A, &two)
	return
}

func finalJInvDeg4(A24plus, C24 field.Fp2) field.Fp2 {
	field.Div2(&C24, &C24)
	field.Sub2(&A24plus, &A24plus, &C24)
	field.Div2(&C24, &C24)
	var j field.Fp2
	isogeny.JInv(&A24plus, &C24, &j)
	return j
}

// KeyGenAlice walks Alice's ℓ=4 isogeny from the base curve under the
// kernel determined by priv, pushing Bob's and Eve's bases through it.
func KeyGenAlice(priv *PrivateKeyAlice) (*PublicKeyAlice, error) {
	XPA, XQA, XRA := montFp2(&aliceGen.XP), montFp2(&aliceGen.XQ), montFp2(&aliceGen.XR)
	phiPB, phiQB, phiRB := montPoint(&bobGen.XP), montPoint(&bobGen.XQ), montPoint(&bobGen.XR)
	phiPC, phiQC, phiRC := montPoint(&eveGen.XP), montPoint(&eveGen.XQ), montPoint(&eveGen.XR)

	A24plus, C24 := degree4Setup()

	var curveA field.Fp2 // base curve: A = 0
	var kernel isogeny.Point
	bits := isogeny.ScalarBits(priv.scalar[:], aliceOrderBits)
	isogeny.Ladder3Pt(&XPA, &XQA, &XRA, bits, &curveA, &kernel)

	stack := isogeny.NewAuxStack(isogeny.MaxAuxPointsAlice)
	index := 0
	for row := 1; row < isogeny.MaxAlice; row++ {
		for index < isogeny.MaxAlice-row {
			stack.Push(kernel, index)
			m := int(isogeny.StrategyAlice[isogeny.MaxAlice-index-row])
			isogeny.DoubleIterA24C24(&kernel, &kernel, &A24plus, &C24, 2*m)
			index += m
		}

		var coeff isogeny.Coeff4
		isogeny.Get4Isogeny(&kernel, &A24plus, &C24, &coeff)
		for i := range stack.Points {
			isogeny.Eval4Isogeny(&stack.Points[i], &coeff)
		}
		isogeny.Eval4Isogeny(&phiPB, &coeff)
		isogeny.Eval4Isogeny(&phiQB, &coeff)
		isogeny.Eval4Isogeny(&phiRB, &coeff)
		isogeny.Eval4Isogeny(&phiPC, &coeff)
		isogeny.Eval4Isogeny(&phiQC, &coeff)
		isogeny.Eval4Isogeny(&phiRC, &coeff)

		n := len(stack.Points) - 1
		kernel = stack.Points[n]
		index = stack.Indices[n]
		stack.Points = stack.Points[:n]
		stack.Indices = stack.Indices[:n]
	}

	var coeff isogeny.Coeff4
	isogeny.Get4Isogeny(&kernel, &A24plus, &C24, &coeff)
	isogeny.Eval4Isogeny(&phiPB, &coeff)
	isogeny.Eval4Isogeny(&phiQB, &coeff)
	isogeny.Eval4Isogeny(&phiRB, &coeff)
	isogeny.Eval4Isogeny(&phiPC, &coeff)
	isogeny.Eval4Isogeny(&phiQC, &coeff)
	isogeny.Eval4Isogeny(&phiRC, &coeff)

	isogeny.Inv6Way(&phiPB.Z, &phiQB.Z, &phiRB.Z, &phiPC.Z, &phiQC.Z, &phiRC.Z)
	pub := &PublicKeyAlice{}
	field.MulMont2(&pub.PB, &phiPB.X, &phiPB.Z)
	field.MulMont2(&pub.QB, &phiQB.X, &phiQB.Z)
	field.MulMont2(&pub.RB, &phiRB.X, &phiRB.Z)
	field.MulMont2(&pub.PC, &phiPC.X, &phiPC.Z)
	field.MulMont2(&pub.QC, &phiQC.X, &phiQC.Z)
	field.MulMont2(&pub.RC, &phiRC.X, &phiRC.Z)
	return pub, nil
}

// KeyGenBob walks Bob's ℓ=3 isogeny from the base curve under the kernel
// determined by priv, pushing Alice's and Eve's bases through it.
func KeyGenBob(priv *PrivateKeyBob) (*PublicKeyBob, error) {
	XPB, XQB, XRB := montFp2(&bobGen.XP), montFp2(&bobGen.XQ), montFp2(&bobGen.XR)
	phiPA, phiQA, phiRA := montPoint(&aliceGen.XP), montPoint(&aliceGen.XQ), montPoint(&aliceGen.XR)
	phiPC, phiQC, phiRC := montPoint(&eveGen.XP), montPoint(&eveGen.XQ), montPoint(&eveGen.XR)

	A24minus, A24plus := degree3Setup()

	var curveA field.Fp2 // base curve: A = 0
	var kernel isogeny.Point
	bits := isogeny.ScalarBits(priv.scalar[:], bobOrderBits)
	isogeny.Ladder3Pt(&XPB, &XQB, &XRB, bits, &curveA, &kernel)

	stack := isogeny.NewAuxStack(isogeny.MaxAuxPointsBob)
	index := 0
	for row := 1; row < isogeny.MaxBob; row++ {
		for index < isogeny.MaxBob-row {
			stack.Push(kernel, index)
			m := int(isogeny.StrategyBob[isogeny.MaxBob-index-row])
			isogeny.TripleIterA24(&kernel, &kernel, &A24minus, &A24plus, m)
			index += m
		}

		var coeff isogeny.Coeff3
		isogeny.Get3Isogeny(&kernel, &A24minus, &A24plus, &coeff)
		for i := range stack.Points {
			isogeny.Eval3Isogeny(&stack.Points[i], &coeff)
		}
		isogeny.Eval3Isogeny(&phiPA, &coeff)
		isogeny.Eval3Isogeny(&phiQA, &coeff)
		isogeny.Eval3Isogeny(&phiRA, &coeff)
		isogeny.Eval3Isogeny(&phiPC, &coeff)
		isogeny.Eval3Isogeny(&phiQC, &coeff)
		isogeny.Eval3Isogeny(&phiRC, &coeff)

		n := len(stack.Points) - 1
		kernel = stack.Points[n]
		index = stack.Indices[n]
		stack.Points = stack.Points[:n]
		stack.Indices = stack.Indices[:n]
	}

	var coeff isogeny.Coeff3
	isogeny.Get3Isogeny(&kernel, &A24minus, &A24plus, &coeff)
	isogeny.Eval3Isogeny(&phiPA, &coeff)
	isogeny.Eval3Isogeny(&phiQA, &coeff)
	isogeny.Eval3Isogeny(&phiRA, &coeff)
	isogeny.Eval3Isogeny(&phiPC, &coeff)
	isogeny.Eval3Isogeny(&phiQC, &coeff)
	isogeny.Eval3Isogeny(&phiRC, &coeff)

	isogeny.Inv6Way(&phiPA.Z, &phiQA.Z, &phiRA.Z, &phiPC.Z, &phiQC.Z, &phiRC.Z)
	pub := &PublicKeyBob{}
	field.MulMont2(&pub.PA, &phiPA.X, &phiPA.Z)
	field.MulMont2(&pub.QA, &phiQA.X, &phiQA.Z)
	field.MulMont2(&pub.RA, &phiRA.X, &phiRA.Z)
	field.MulMont2(&pub.PC, &phiPC.X, &phiPC.Z)
	field.MulMont2(&pub.QC, &phiQC.X, &phiQC.Z)
	field.MulMont2(&pub.RC, &phiRC.X, &phiRC.Z)
	return pub, nil
}

// KeyGenEve walks Eve's ℓ=5 isogeny from the base curve under the kernel
// determined by priv, pushing the order-2 witness alpha, and Alice's and
// Bob's bases, through it. The witness lets Eve recover the codomain curve
// coefficients after each row without a three-point projective recovery.
func KeyGenEve(priv *PrivateKeyEve) (*PublicKeyEve, error) {
	XPC, XQC, XRC := montFp2(&eveGen.XP), montFp2(&eveGen.XQ), montFp2(&eveGen.XR)
	phiPA, phiQA, phiRA := montPoint(&aliceGen.XP), montPoint(&aliceGen.XQ), montPoint(&aliceGen.XR)
	phiPB, phiQB, phiRB := montPoint(&bobGen.XP), montPoint(&bobGen.XQ), montPoint(&bobGen.XR)
	alpha := montPoint(&alphaWitness)

	A24plus, C24 := degree4Setup()

	var curveA field.Fp2 // base curve: A = 0
	var kernel isogeny.Point
	bits := isogeny.ScalarBits(priv.scalar[:], eveOrderBits)
	isogeny.Ladder3Pt(&XPC, &XQC, &XRC, bits, &curveA, &kernel)

	stack := isogeny.NewAuxStack(isogeny.MaxAuxPointsEve)
	index := 0
	for row := 1; row < isogeny.MaxEve; row++ {
		for index < isogeny.MaxEve-row {
			stack.Push(kernel, index)
			m := int(isogeny.StrategyEve[isogeny.MaxEve-index-row])
			isogeny.QuintupleIter(&kernel, &kernel, &A24plus, &C24, m)
			index += m
		}

		var dbl isogeny.Point
		isogeny.DoubleA24C24(&kernel, &dbl, &A24plus, &C24)
		isogeny.Eval5Isogeny(&kernel, &dbl, &alpha)
		for i := range stack.Points {
			isogeny.Eval5Isogeny(&kernel, &dbl, &stack.Points[i])
		}
		isogeny.Eval5Isogeny(&kernel, &dbl, &phiPA)
		isogeny.Eval5Isogeny(&kernel, &dbl, &phiQA)
		isogeny.Eval5Isogeny(&kernel, &dbl, &phiRA)
		isogeny.Eval5Isogeny(&kernel, &dbl, &phiPB)
		isogeny.Eval5Isogeny(&kernel, &dbl, &phiQB)
		isogeny.Eval5Isogeny(&kernel, &dbl, &phiRB)
		isogeny.GetAFromAlpha(&alpha, &A24plus, &C24)

		n := len(stack.Points) - 1
		kernel = stack.Points[n]
		index = stack.Indices[n]
		stack.Points = stack.Points[:n]
		stack.Indices = stack.Indices[:n]
	}

	var dbl isogeny.Point
	isogeny.DoubleA24C24(&kernel, &dbl, &A24plus, &C24)
	isogeny.Eval5Isogeny(&kernel, &dbl, &phiPA)
	isogeny.Eval5Isogeny(&kernel, &dbl, &phiQA)
	isogeny.Eval5Isogeny(&kernel, &dbl, &phiRA)
	isogeny.Eval5Isogeny(&kernel, &dbl, &phiPB)
	isogeny.Eval5Isogeny(&kernel, &dbl, &phiQB)
	isogeny.Eval5Isogeny(&kernel, &dbl, &phiRB)

	isogeny.Inv6Way(&phiPA.Z, &phiQA.Z, &phiRA.Z, &phiPB.Z, &phiQB.Z, &phiRB.Z)
	pub := &PublicKeyEve{}
	field.MulMont2(&pub.PA, &phiPA.X, &phiPA.Z)
	field.MulMont2(&pub.QA, &phiQA.X, &phiQA.Z)
	field.MulMont2(&pub.RA, &phiRA.X, &phiRA.Z)
	field.MulMont2(&pub.PB, &phiPB.X, &phiPB.Z)
	field.MulMont2(&pub.QB, &phiQB.X, &phiQB.Z)
	field.MulMont2(&pub.RB, &phiRB.X, &phiRB.Z)
	return pub, nil
}

// SharedPublicBobFromAlice walks Bob's ℓ=3 isogeny on the curve Alice's
// public key describes, under the kernel determined by priv and Bob's own
// basis images from pubA, pushing Eve's basis images through.
func SharedPublicBobFromAlice(priv *PrivateKeyBob, pubA *PublicKeyAlice) (*SharedPublic, error) {
	phiPC := isogeny.Point{X: pubA.PC}
	phiPC.Z.A = field.MontgomeryOne
	phiQC := isogeny.Point{X: pubA.QC}
	phiQC.Z.A = field.MontgomeryOne
	phiRC := isogeny.Point{X: pubA.RC}
	phiRC.Z.A = field.MontgomeryOne

	curveA, A24minus, A24plus := curveFromBasisDeg3(&pubA.PB, &pubA.QB, &pubA.RB)

	var kernel isogeny.Point
	bits := isogeny.ScalarBits(priv.scalar[:], bobOrderBits)
	isogeny.Ladder3Pt(&pubA.PB, &pubA.QB, &pubA.RB, bits, &curveA, &kernel)

	stack := isogeny.NewAuxStack(isogeny.MaxAuxPointsBob)
	index := 0
	for row := 1; row < isogeny.MaxBob; row++ {
		for index < isogeny.MaxBob-row {
			stack.Push(kernel, index)
			m := int(isogeny.StrategyBob[isogeny.MaxBob-index-row])
			isogeny.TripleIterA24(&kernel, &kernel, &A24minus, &A24plus, m)
			index += m
		}

		var coeff isogeny.Coeff3
		isogeny.Get3Isogeny(&kernel, &A24minus, &A24plus, &coeff)
		for i := range stack.Points {
			isogeny.Eval3Isogeny(&stack.Points[i], &coeff)
		}
		isogeny.Eval3Isogeny(&phiPC, &coeff)
		isogeny.Eval3Isogeny(&phiQC, &coeff)
		isogeny.Eval3Isogeny(&phiRC, &coeff)

		n := len(stack.Points) - 1
		kernel = stack.Points[n]
		index = stack.Indices[n]
		stack.Points = stack.Points[:n]
		stack.Indices = stack.Indices[:n]
	}

	var coeff isogeny.Coeff3
	isogeny.Get3Isogeny(&kernel, &A24minus, &A24plus, &coeff)
	isogeny.Eval3Isogeny(&phiPC, &coeff)
	isogeny.Eval3Isogeny(&phiQC, &coeff)
	isogeny.Eval3Isogeny(&phiRC, &coeff)

	isogeny.Inv3Way(&phiPC.Z, &phiQC.Z, &phiRC.Z)
	out := &SharedPublic{}
	field.MulMont2(&out.X0, &phiPC.X, &phiPC.Z)
	field.MulMont2(&out.X1, &phiQC.X, &phiQC.Z)
	field.MulMont2(&out.X2, &phiRC.X, &phiRC.Z)
	return out, nil
}

// eveWalk performs one full ℓ=5 strategy traversal starting from the
// projective curve constants A24plus,C24 with kernel basis {xP,xQ,xR} under
// priv, pushing the three extra points pushP/pushQ/pushR through (when
// non-nil) and recovering the codomain curve from their images after each
// row via get_A_projective, since no alpha witness survives past the base
// curve. The pushed points are updated in place; it returns the final
// A24plus,C24.
func eveWalk(priv *PrivateKeyEve, curveA, xP, xQ, xR *field.Fp2, pushP, pushQ, pushR *isogeny.Point, A24plus, C24 field.Fp2) (field.Fp2, field.Fp2) {
	var kernel isogeny.Point
	bits := isogeny.ScalarBits(priv.scalar[:], eveOrderBits)
	isogeny.Ladder3Pt(xP, xQ, xR, bits, curveA, &kernel)

	stack := isogeny.NewAuxStack(isogeny.MaxAuxPointsEve)
	index := 0
	for row := 1; row < isogeny.MaxEve; row++ {
		for index < isogeny.MaxEve-row {
			stack.Push(kernel, index)
			m := int(isogeny.StrategyEve[isogeny.MaxEve-index-row])
			isogeny.QuintupleIter(&kernel, &kernel, &A24plus, &C24, m)
			index += m
		}

		var dbl isogeny.Point
		isogeny.DoubleA24C24(&kernel, &dbl, &A24plus, &C24)
		if pushP != nil {
			isogeny.Eval5Isogeny(&kernel, &dbl, pushP)
			isogeny.Eval5Isogeny(&kernel, &dbl, pushQ)
			isogeny.Eval5Isogeny(&kernel, &dbl, pushR)
			isogeny.GetAProjective(pushP, pushQ, pushR, &A24plus, &C24)
		}
		for i := range stack.Points {
			isogeny.Eval5Isogeny(&kernel, &dbl, &stack.Points[i])
		}

		n := len(stack.Points) - 1
		kernel = stack.Points[n]
		index = stack.Indices[n]
		stack.Points = stack.Points[:n]
		stack.Indices = stack.Indices[:n]
	}

	var dbl isogeny.Point
	isogeny.DoubleA24C24(&kernel, &dbl, &A24plus, &C24)
	if pushP != nil {
		isogeny.Eval5Isogeny(&kernel, &dbl, pushP)
		isogeny.Eval5Isogeny(&kernel, &dbl, pushQ)
		isogeny.Eval5Isogeny(&kernel, &dbl, pushR)
	}
	return A24plus, C24
}

// SharedSecretEveFromBob walks Eve's ℓ=5 isogeny twice: once on the curve
// Bob's public key describes (recovering SharedPublicBC, the images of
// Alice's basis pushed through Bob then Eve), and once on the curve
// SharedPublicAB describes (the images of Eve's own basis pushed through
// Alice then Bob), whose final codomain's j-invariant is the terminal
// shared secret.
func SharedSecretEveFromBob(priv *PrivateKeyEve, pubB *PublicKeyBob, sharedAB *SharedPublic) (*SharedPublic, *SharedSecret, error) {
	phiPA := isogeny.Point{X: pubB.PA}
	phiPA.Z.A = field.MontgomeryOne
	phiQA := isogeny.Point{X: pubB.QA}
	phiQA.Z.A = field.MontgomeryOne
	phiRA := isogeny.Point{X: pubB.RA}
	phiRA.Z.A = field.MontgomeryOne

	A, A24plus, C24 := curveFromBasisDeg4(&pubB.PC, &pubB.QC, &pubB.RC)
	A24plus, C24 = eveWalk(priv, &A, &pubB.PC, &pubB.QC, &pubB.RC, &phiPA, &phiQA, &phiRA, A24plus, C24)

	isogeny.Inv3Way(&phiPA.Z, &phiQA.Z, &phiRA.Z)
	sharedBC := &SharedPublic{}
	field.MulMont2(&sharedBC.X0, &phiPA.X, &phiPA.Z)
	field.MulMont2(&sharedBC.X1, &phiQA.X, &phiQA.Z)
	field.MulMont2(&sharedBC.X2, &phiRA.X, &phiRA.Z)

	phiAB_PC := isogeny.Point{X: sharedAB.X0}
	phiAB_PC.Z.A = field.MontgomeryOne
	phiAB_QC := isogeny.Point{X: sharedAB.X1}
	phiAB_QC.Z.A = field.MontgomeryOne
	phiAB_RC := isogeny.Point{X: sharedAB.X2}
	phiAB_RC.Z.A = field.MontgomeryOne

	A2, A24plus2, C24_2 := curveFromBasisDeg4(&sharedAB.X0, &sharedAB.X1, &sharedAB.X2)
	A24plus2, C24_2 = eveWalk(priv, &A2, &sharedAB.X0, &sharedAB.X1, &sharedAB.X2, &phiAB_PC, &phiAB_QC, &phiAB_RC, A24plus2, C24_2)
	isogeny.GetAProjective(&phiAB_PC, &phiAB_QC, &phiAB_RC, &A24plus2, &C24_2)

	j := finalJInvDeg4(A24plus2, C24_2)
	return sharedBC, &SharedSecret{J: j}, nil
}

// SharedSecretAliceFromEve walks Alice's ℓ=4 isogeny twice: once on the
// curve Eve's public key describes (recovering SharedPublicAC, the images
// of Bob's basis pushed through Eve then Alice), and once on the curve
// SharedPublicBC describes (the images of Alice's own basis pushed through
// Bob then Eve), whose final codomain's j-invariant is the terminal shared
// secret.
func SharedSecretAliceFromEve(priv *PrivateKeyAlice, pubC *PublicKeyEve, sharedBC *SharedPublic) (*SharedPublic, *SharedSecret, error) {
	phiPB := isogeny.Point{X: pubC.PB}
	phiPB.Z.A = field.MontgomeryOne
	phiQB := isogeny.Point{X: pubC.QB}
	phiQB.Z.A = field.MontgomeryOne
	phiRB := isogeny.Point{X: pubC.RB}
	phiRB.Z.A = field.MontgomeryOne

	A, A24plus, C24 := curveFromBasisDeg4(&pubC.PA, &pubC.QA, &pubC.RA)

	var kernel isogeny.Point
	bits := isogeny.ScalarBits(priv.scalar[:], aliceOrderBits)
	isogeny.Ladder3Pt(&pubC.PA, &pubC.QA, &pubC.RA, bits, &A, &kernel)

	stack := isogeny.NewAuxStack(isogeny.MaxAuxPointsAlice)
	index := 0
	for row := 1; row < isogeny.MaxAlice; row++ {
		for index < isogeny.MaxAlice-row {
			stack.Push(kernel, index)
			m := int(isogeny.StrategyAlice[isogeny.MaxAlice-index-row])
			isogeny.DoubleIterA24C24(&kernel, &kernel, &A24plus, &C24, 2*m)
			index += m
		}

		var coeff isogeny.Coeff4
		isogeny.Get4Isogeny(&kernel, &A24plus, &C24, &coeff)
		for i := range stack.Points {
			isogeny.Eval4Isogeny(&stack.Points[i], &coeff)
		}
		isogeny.Eval4Isogeny(&phiPB, &coeff)
		isogeny.Eval4Isogeny(&phiQB, &coeff)
		isogeny.Eval4Isogeny(&phiRB, &coeff)

		n := len(stack.Points) - 1
		kernel = stack.Points[n]
		index = stack.Indices[n]
		stack.Points = stack.Points[:n]
		stack.Indices = stack.Indices[:n]
	}

	var coeff isogeny.Coeff4
	isogeny.Get4Isogeny(&kernel, &A24plus, &C24, &coeff)
	isogeny.Eval4Isogeny(&phiPB, &coeff)
	isogeny.Eval4Isogeny(&phiQB, &coeff)
	isogeny.Eval4Isogeny(&phiRB, &coeff)

	isogeny.Inv3Way(&phiPB.Z, &phiQB.Z, &phiRB.Z)
	sharedAC := &SharedPublic{}
	field.MulMont2(&sharedAC.X0, &phiPB.X, &phiPB.Z)
	field.MulMont2(&sharedAC.X1, &phiQB.X, &phiQB.Z)
	field.MulMont2(&sharedAC.X2, &phiRB.X, &phiRB.Z)

	A2, A24plus2, C24_2 := curveFromBasisDeg4(&sharedBC.X0, &sharedBC.X1, &sharedBC.X2)

	var kernel2 isogeny.Point
	isogeny.Ladder3Pt(&sharedBC.X0, &sharedBC.X1, &sharedBC.X2, bits, &A2, &kernel2)

	stack2 := isogeny.NewAuxStack(isogeny.MaxAuxPointsAlice)
	index = 0
	for row := 1; row < isogeny.MaxAlice; row++ {
		for index < isogeny.MaxAlice-row {
			stack2.Push(kernel2, index)
			m := int(isogeny.StrategyAlice[isogeny.MaxAlice-index-row])
			isogeny.DoubleIterA24C24(&kernel2, &kernel2, &A24plus2, &C24_2, 2*m)
			index += m
		}

		var coeff2 isogeny.Coeff4
		isogeny.Get4Isogeny(&kernel2, &A24plus2, &C24_2, &coeff2)
		for i := range stack2.Points {
			isogeny.Eval4Isogeny(&stack2.Points[i], &coeff2)
		}

		n := len(stack2.Points) - 1
		kernel2 = stack2.Points[n]
		index = stack2.Indices[n]
		stack2.Points = stack2.Points[:n]
		stack2.Indices = stack2.Indices[:n]
	}

	var coeff2 isogeny.Coeff4
	isogeny.Get4Isogeny(&kernel2, &A24plus2, &C24_2, &coeff2)

	j := finalJInvDeg4(A24plus2, C24_2)
	return sharedAC, &SharedSecret{J: j}, nil
}

// SharedSecretBobFromAlice walks Bob's ℓ=3 isogeny once more, on the curve
// SharedPublicAC describes, with no further points to push: its codomain's
// j-invariant is the terminal shared secret.
func SharedSecretBobFromAlice(priv *PrivateKeyBob, sharedAC *SharedPublic) (*SharedSecret, error) {
	A, A24minus, A24plus := curveFromBasisDeg3(&sharedAC.X0, &sharedAC.X1, &sharedAC.X2)

	var kernel isogeny.Point
	bits := isogeny.ScalarBits(priv.scalar[:], bobOrderBits)
	isogeny.Ladder3Pt(&sharedAC.X0, &sharedAC.X1, &sharedAC.X2, bits, &A, &kernel)

	stack := isogeny.NewAuxStack(isogeny.MaxAuxPointsBob)
	index := 0
	for row := 1; row < isogeny.MaxBob; row++ {
		for index < isogeny.MaxBob-row {
			stack.Push(kernel, index)
			m := int(isogeny.StrategyBob[isogeny.MaxBob-index-row])
			isogeny.TripleIterA24(&kernel, &kernel, &A24minus, &A24plus, m)
			index += m
		}

		var coeff isogeny.Coeff3
		isogeny.Get3Isogeny(&kernel, &A24minus, &A24plus, &coeff)
		for i := range stack.Points {
			isogeny.Eval3Isogeny(&stack.Points[i], &coeff)
		}

		n := len(stack.Points) - 1
		kernel = stack.Points[n]
		index = stack.Indices[n]
		stack.Points = stack.Points[:n]
		stack.Indices = stack.Indices[:n]
	}

	var coeff isogeny.Coeff3
	isogeny.Get3Isogeny(&kernel, &A24minus, &A24plus, &coeff)

	var finalA, finalA24 field.Fp2
	field.Add2(&finalA, &A24plus, &A24minus)
	field.Add2(&finalA, &finalA, &finalA)
	field.Sub2(&finalA24, &A24plus, &A24minus)

	var j field.Fp2
	isogeny.JInv(&finalA, &finalA24, &j)
	return &SharedSecret{J: j}, nil
}
