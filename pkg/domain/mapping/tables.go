// 指示: miu200521358
package mapping

// Tables は変換処理全体で参照する不変の対応表一式を表す。
type Tables struct {
	Correspondence  *Correspondence
	SnapRules       []SnapRule
	RollCorrections RollCorrections
	LimitBases      LimitBases
	WeightMerges    []WeightMerge
}

// DefaultTables は組み込みの対応表一式を返す。
func DefaultTables() Tables {
	return Tables{
		Correspondence:  DefaultCorrespondence(),
		SnapRules:       DefaultSnapRules(),
		RollCorrections: DefaultRollCorrections(),
		LimitBases:      DefaultLimitBases(),
		WeightMerges:    DefaultWeightMerges(),
	}
}

// WithCorrespondence は対応表のみ差し替えた一式を返す。
func (t Tables) WithCorrespondence(correspondence *Correspondence) Tables {
	if correspondence != nil {
		t.Correspondence = correspondence
	}
	return t
}
