// 指示: miu200521358
package mapping

// WeightMerge はARPに存在しないボーンのウェイトを隣接グループへ合算する指定を表す。
type WeightMerge struct {
	Target    string
	Satellite string
}

// DefaultWeightMerges は中足骨ウェイトを足へ合算する指定を返す。
func DefaultWeightMerges() []WeightMerge {
	merges := make([]WeightMerge, 0, len(BothSides))
	for _, side := range BothSides {
		merges = append(merges, WeightMerge{
			Target:    RoleFoot.ArpName(side),
			Satellite: RoleMetatarsals.DazName(side),
		})
	}
	return merges
}

// CopyRoots は構造コピーで走査を開始するDaz胴体ボーンを返す。
func CopyRoots() []string {
	return []string{RolePelvis.DazName(SideCenter), RoleAbdomenLower.DazName(SideCenter)}
}

// CopyIgnored はウェイト合算済みのため構造コピーしないDazボーン名の集合を返す。
func CopyIgnored() map[string]struct{} {
	ignored := map[string]struct{}{}
	for _, merge := range DefaultWeightMerges() {
		ignored[merge.Satellite] = struct{}{}
	}
	return ignored
}

// BreastProbe はDaz骨格が胸ボーンを持つか判定するためのボーン名を返す。
func BreastProbe() string {
	return RolePectoral.DazName(SideLeft)
}
