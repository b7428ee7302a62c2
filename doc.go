// Package sigkp747 implements a three-party supersingular-isogeny group
// key agreement over GF(p747^2), p747 = 4*3^153*5^105 - 1.
//
// Alice, Bob and Eve each walk an isogeny of their own degree (4, 3 and
// 5 respectively) starting from the base curve, publish the images of
// the other two participants' torsion bases under that walk, and
// recurse once more over the published images to converge on a common
// j-invariant:
//
//	KeyGenAlice, KeyGenBob, KeyGenEve           (round 1: from the base curve)
//	SharedPublicBobFromAlice                    (round 2a)
//	SharedSecretEveFromBob, SharedSecretAliceFromEve  (round 2b, two walks each)
//	SharedSecretBobFromAlice                    (round 2c: terminal walk)
//
// All three participants arrive at the same SharedSecret regardless of
// which leg of this hexagon they compute last.
package sigkp747
