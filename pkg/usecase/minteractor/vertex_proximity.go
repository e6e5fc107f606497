// 指示: miu200521358
package minteractor

import (
	"fmt"
	"sort"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// VertexRef はメッシュ名と頂点indexの組を表す。
type VertexRef struct {
	Mesh  string
	Index int
}

// NearVertexSelectResult は近接頂点選択の結果を表す。
type NearVertexSelectResult struct {
	Seeds    int
	Selected []VertexRef
}

// VertexSnapResult は頂点スナップの結果を表す。
type VertexSnapResult struct {
	Candidates int
	Snapped    []VertexRef
}

// SelectNearVertices は選択済み頂点から distance 未満の位置にある未選択頂点を追加選択する。
// 基準は呼び出し時点の選択頂点のみで、追加選択した頂点からは広げない。
func SelectNearVertices(meshes []*model.Mesh, distance float64, reporter moutput.IReporter) NearVertexSelectResult {
	result := NearVertexSelectResult{}
	meshes = meshesWithVertices(meshes, reporter)

	seeds := make(vertexPoints, 0)
	for _, mesh := range meshes {
		for _, index := range mesh.SelectedIndexes() {
			seeds = append(seeds, vertexPoint{position: mesh.Vertices[index], index: index})
		}
	}
	result.Seeds = len(seeds)
	if len(seeds) == 0 || distance <= 0 {
		return result
	}
	tree := kdtree.New(seeds, false)

	for _, mesh := range meshes {
		picked := make([]int, 0)
		for index, position := range mesh.Vertices {
			if mesh.IsSelected(index) {
				continue
			}
			nearest, squared := tree.Nearest(vertexPoint{position: position})
			if nearest == nil || squared >= distance*distance {
				continue
			}
			picked = append(picked, index)
		}
		for _, index := range picked {
			if setSelection(mesh, index, true, reporter) {
				result.Selected = append(result.Selected, VertexRef{Mesh: mesh.Name, Index: index})
			}
		}
	}
	return result
}

// snapCandidate は移動候補1件を表す。
type snapCandidate struct {
	squared float64
	mesh    int
	index   int
	target  vertexPoint
}

// SnapVerticesToMesh は各メッシュの選択頂点を、snap メッシュ上で distance 以内にある頂点位置へ移動する。
// 近い組から確定し、snap 側の頂点と移動する頂点はそれぞれ一度だけ使う。移動した頂点は選択を解除する。
func SnapVerticesToMesh(
	snap *model.Mesh,
	meshes []*model.Mesh,
	distance float64,
	onlySelected bool,
	reporter moutput.IReporter,
) (VertexSnapResult, error) {
	result := VertexSnapResult{}
	if snap == nil || len(snap.Vertices) == 0 {
		return result, fmt.Errorf("スナップ先メッシュに頂点位置がありません")
	}
	if distance < 0 {
		return result, fmt.Errorf("スナップ距離は0以上を指定してください: %f", distance)
	}

	targets := make(vertexPoints, 0, len(snap.Vertices))
	for index, position := range snap.Vertices {
		if onlySelected && !snap.IsSelected(index) {
			continue
		}
		targets = append(targets, vertexPoint{position: position, index: index})
	}
	if len(targets) == 0 {
		return result, nil
	}
	tree := kdtree.New(targets, false)

	editing := make([]*model.Mesh, 0, len(meshes))
	for _, mesh := range meshes {
		if mesh != snap {
			editing = append(editing, mesh)
		}
	}
	editing = meshesWithVertices(editing, reporter)

	candidates := make([]snapCandidate, 0)
	for meshIndex, mesh := range editing {
		for _, index := range mesh.SelectedIndexes() {
			keeper := kdtree.NewDistKeeper(distance * distance)
			tree.NearestSet(keeper, vertexPoint{position: mesh.Vertices[index]})
			for _, found := range keeper.Heap {
				target, ok := found.Comparable.(vertexPoint)
				if !ok {
					continue
				}
				candidates = append(candidates, snapCandidate{squared: found.Dist, mesh: meshIndex, index: index, target: target})
			}
		}
	}
	result.Candidates = len(candidates)
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.squared != b.squared {
			return a.squared < b.squared
		}
		if a.mesh != b.mesh {
			return a.mesh < b.mesh
		}
		if a.index != b.index {
			return a.index < b.index
		}
		return a.target.index < b.target.index
	})

	consumed := map[int]struct{}{}
	moved := map[VertexRef]struct{}{}
	for _, candidate := range candidates {
		mesh := editing[candidate.mesh]
		ref := VertexRef{Mesh: mesh.Name, Index: candidate.index}
		if _, used := consumed[candidate.target.index]; used {
			continue
		}
		if _, done := moved[ref]; done {
			continue
		}
		mesh.Vertices[candidate.index] = candidate.target.position
		setSelection(mesh, candidate.index, false, reporter)
		consumed[candidate.target.index] = struct{}{}
		moved[ref] = struct{}{}
		result.Snapped = append(result.Snapped, ref)
	}
	return result, nil
}

// meshesWithVertices は頂点位置を持つメッシュのみを返し、持たないメッシュは通知する。
func meshesWithVertices(meshes []*model.Mesh, reporter moutput.IReporter) []*model.Mesh {
	filtered := make([]*model.Mesh, 0, len(meshes))
	for _, mesh := range meshes {
		if mesh == nil {
			continue
		}
		if len(mesh.Vertices) == 0 {
			report(reporter, newInfo(model.WarningMeshVerticesMissing, mesh.Name,
				"頂点位置がないメッシュを対象外にします: %s", mesh.Name))
			continue
		}
		if len(mesh.Vertices) != mesh.VertexCount {
			report(reporter, newWarning(model.WarningMeshVerticesMissing, mesh.Name,
				"頂点位置の件数が頂点数と一致しないため対象外にします: vertices=%d vertex_count=%d",
				len(mesh.Vertices), mesh.VertexCount))
			continue
		}
		filtered = append(filtered, mesh)
	}
	return filtered
}

// setSelection は頂点の選択状態を変更し、失敗時は警告を通知する。
func setSelection(mesh *model.Mesh, index int, selected bool, reporter moutput.IReporter) bool {
	if err := mesh.SetSelected(index, selected); err != nil {
		report(reporter, newWarning(model.WarningMeshVerticesMissing, mesh.Name,
			"頂点の選択状態を変更できません: %v", err))
		return false
	}
	return true
}

// vertexPoint はk-d木に格納する頂点1件を表す。
type vertexPoint struct {
	position r3.Vec
	index    int
}

// Compare は d 軸上の符号付き距離を返す。
func (p vertexPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return axisComponent(p.position, d) - axisComponent(c.(vertexPoint).position, d)
}

// Dims は次元数を返す。
func (p vertexPoint) Dims() int { return 3 }

// Distance は2乗距離を返す。
func (p vertexPoint) Distance(c kdtree.Comparable) float64 {
	d := r3.Sub(p.position, c.(vertexPoint).position)
	return r3.Dot(d, d)
}

type vertexPoints []vertexPoint

func (p vertexPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p vertexPoints) Len() int                              { return len(p) }
func (p vertexPoints) Pivot(d kdtree.Dim) int                { return vertexPlane{Dim: d, vertexPoints: p}.Pivot() }
func (p vertexPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// vertexPlane は分割軸ごとの並べ替えを提供する。
type vertexPlane struct {
	kdtree.Dim
	vertexPoints
}

func (p vertexPlane) Less(i, j int) bool {
	return axisComponent(p.vertexPoints[i].position, p.Dim) < axisComponent(p.vertexPoints[j].position, p.Dim)
}
func (p vertexPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p vertexPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertexPoints = p.vertexPoints[start:end]
	return p
}
func (p vertexPlane) Swap(i, j int) {
	p.vertexPoints[i], p.vertexPoints[j] = p.vertexPoints[j], p.vertexPoints[i]
}

// axisComponent は軸番号に対応する成分を返す。
func axisComponent(v r3.Vec, d kdtree.Dim) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
