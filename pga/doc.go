// Package pga holds the operations shared by the projective algebras
// (pga2dp, pga3dp), written once over core.MV and an *core.Algebra.
//
// Every operation is a fixed composition of kernel products:
//
//	RightBulkDual(a)      = rcmpl(bulk(a))
//	RightWeightDual(a)    = rcmpl(weight(a))
//	LeftBulkDual(a)       = lcmpl(bulk(a))
//	LeftWeightDual(a)     = lcmpl(weight(a))
//
//	LeftXContract(a,b)    = rwdg(leftXDual(a), b)
//	RightXContract(a,b)   = rwdg(a, rightXDual(b))
//	LeftXExpand(a,b)      = wdg(leftXDual(a), b)
//	RightXExpand(a,b)     = wdg(a, rightXDual(b))
//
//	OrthoProj(a, b)       = rwdg(b, wdg(a, rightWeightDual(b)))
//	CentralProj(a, b)     = rwdg(b, wdg(a, rightBulkDual(b)))
//	OrthoAntiproj(a, b)   = wdg(b, rwdg(a, rightWeightDual(b)))
//
// The typed packages wrap these for their geometric objects.
package pga
