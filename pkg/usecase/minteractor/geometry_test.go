// 指示: miu200521358
package minteractor

import (
	"testing"
)

func TestRotateAxisAroundTwist(t *testing.T) {
	cases := []struct {
		axis       int
		degrees    float64
		wantAxis   int
		wantNegate bool
	}{
		{axis: 0, degrees: 90, wantAxis: 2, wantNegate: true},
		{axis: 2, degrees: 90, wantAxis: 0, wantNegate: false},
		{axis: 1, degrees: 90, wantAxis: 1, wantNegate: false},
		{axis: 0, degrees: 180, wantAxis: 0, wantNegate: true},
		{axis: 2, degrees: 180, wantAxis: 2, wantNegate: true},
		{axis: 1, degrees: 180, wantAxis: 1, wantNegate: false},
		{axis: 0, degrees: 270, wantAxis: 2, wantNegate: false},
		{axis: 2, degrees: 270, wantAxis: 0, wantNegate: true},
	}
	for _, tc := range cases {
		axis, negate := rotateAxisAroundTwist(tc.axis, tc.degrees)
		if axis != tc.wantAxis || negate != tc.wantNegate {
			t.Fatalf("axis=%d degrees=%v: got=(%d,%v) want=(%d,%v)",
				tc.axis, tc.degrees, axis, negate, tc.wantAxis, tc.wantNegate)
		}
	}
}

func TestFlattenUnitRejectsVerticalVector(t *testing.T) {
	if _, ok := flattenUnit(pos(0, 0, 1)); ok {
		t.Fatalf("vertical vector should not flatten")
	}
	unit, ok := flattenUnit(pos(3, 4, 10))
	if !ok {
		t.Fatalf("flatten failed")
	}
	assertVecNearForTest(t, "flattened", unit, pos(0.6, 0.8, 0))
}

func TestProjectPointOnLine(t *testing.T) {
	projected := projectPointOnLine(pos(1, 2, 3), pos(0, 0, 0), pos(0, 1, 0))
	assertVecNearForTest(t, "projected", projected, pos(0, 2, 0))
}

func TestLevelToReplacesHeightOnly(t *testing.T) {
	assertVecNearForTest(t, "leveled", levelTo(pos(1, 2, 3), 0.5), pos(1, 2, 0.5))
	assertVecNearForTest(t, "flattened", levelTo(pos(-1, 0.25, -4), 0), pos(-1, 0.25, 0))
}
