// Package preset names and exports the comparator/detector combinations a
// Cortex-M4 benchmark found Pareto-optimal: cheapest CPU cost for a given
// detection sensitivity. These are the module's "tuned presets" - preserved
// bit-for-bit (same comparator kind, same tolerance, at each tier) for
// compatibility with anything already tuned against them downstream.
//
// Cycle counts from the source benchmark, single16/double16/single32/double32
// tested against their own block size, comparator kind and tolerance:
//
//	single16;exact;2288      single32;exact;4204       double16;exact;3696       double32;exact;12040
//	single16;lzc1;5581       single32;lzc1;8705        double16;lzc1;10874       double32;lzc1;20678
//	single16;lzc2;9308       single32;lzc2;13985       double16;lzc2;16145       double32;lzc2;29346
//	single16;lzc3;12188      single32;lzc3;18548       double16;lzc3;22358       double32;lzc3;37988
//	single16;lzc4;15068      single32;lzc4;23105       double16;lzc4;27188       double32;lzc4;46600
//	                         single32;lzc5;27665                                 double32;lzc5;55238
//	                         single32;lzc6;30785                                 double32;lzc6;63906
//	single16;popcnt1;3874    single32;popcnt1;6548     double16;popcnt1;6010     double32;popcnt1;15908
//	single16;popcnt2;7726    single32;popcnt2;15314    double16;popcnt2;14566    double32;popcnt2;33252
//	single16;twoscmpl1;3398  single32;twoscmpl1;6553   double16;twoscmpl1;6995   double32;twoscmpl1;16814
//	single16;twoscmpl2;4412  single32;twoscmpl2;7627   double16;twoscmpl2;9398   double32;twoscmpl2;18728
//	single16;twoscmpl3;5609  single32;twoscmpl3;9670   double16;twoscmpl3;10865  double32;twoscmpl3;23526
//	single16;twoscmpl4;7718  single32;twoscmpl4;12787  double16;twoscmpl4;13715  double32;twoscmpl4;26466
//	                         single32;twoscmpl5;14947                           double32;twoscmpl5;32168
//	                         single32;twoscmpl6;17348                           double32;twoscmpl6;35106
//
// single16/single32 won the Pareto frontier on the Cortex-M4 target this
// table came from, which is why only those two shapes are exported here;
// double16/double32 remain available directly from the detector package
// for targets where the compiler schedules the extra register pressure
// better (see detector.Double16, detector.Double32 and SPEC_FULL.md §4.2).
package preset

import (
	"github.com/kb2gnd/syncframe/comparator"
	"github.com/kb2gnd/syncframe/detector"
)

// Sync16Tol0 is an exact-match 16-bit detector: zero tolerance.
func Sync16Tol0(syncword uint16) detector.Single16 {
	return detector.Single16{Comparator: comparator.NewExact16(syncword)}
}

// Sync16Tol1 tolerates 1 bit error.
func Sync16Tol1(syncword uint16) detector.Single16 {
	return detector.Single16{Comparator: comparator.NewTwosComplement16(syncword, 1)}
}

// Sync16Tol2 tolerates up to 2 bit errors.
func Sync16Tol2(syncword uint16) detector.Single16 {
	return detector.Single16{Comparator: comparator.NewTwosComplement16(syncword, 2)}
}

// Sync16Tol3 tolerates up to 3 bit errors.
func Sync16Tol3(syncword uint16) detector.Single16 {
	return detector.Single16{Comparator: comparator.NewTwosComplement16(syncword, 3)}
}

// Sync16Tol4 tolerates up to 4 bit errors.
func Sync16Tol4(syncword uint16) detector.Single16 {
	return detector.Single16{Comparator: comparator.NewTwosComplement16(syncword, 4)}
}

// Sync32Tol0 is an exact-match 32-bit detector: zero tolerance.
func Sync32Tol0(syncword uint32) detector.Single32 {
	return detector.Single32{Comparator: comparator.NewExact32(syncword)}
}

// Sync32Tol1 tolerates up to 1 bit error.
func Sync32Tol1(syncword uint32) detector.Single32 {
	return detector.Single32{Comparator: comparator.NewTwosComplement32(syncword, 1)}
}

// Sync32Tol2 tolerates up to 2 bit errors.
func Sync32Tol2(syncword uint32) detector.Single32 {
	return detector.Single32{Comparator: comparator.NewTwosComplement32(syncword, 2)}
}

// Sync32Tol3 tolerates up to 3 bit errors.
func Sync32Tol3(syncword uint32) detector.Single32 {
	return detector.Single32{Comparator: comparator.NewTwosComplement32(syncword, 3)}
}

// Sync32Tol4 tolerates up to 4 bit errors.
func Sync32Tol4(syncword uint32) detector.Single32 {
	return detector.Single32{Comparator: comparator.NewTwosComplement32(syncword, 4)}
}

// Sync32Tol5 tolerates up to 5 bit errors.
func Sync32Tol5(syncword uint32) detector.Single32 {
	return detector.Single32{Comparator: comparator.NewTwosComplement32(syncword, 5)}
}

// Sync32Tol6 switches comparator kind at the top of the range: PopCount
// with a tolerance of 6 beat TwosComplement-at-6 on the benchmark.
func Sync32Tol6(syncword uint32) detector.Single32 {
	return detector.Single32{Comparator: comparator.NewPopCount32(syncword, 6)}
}
