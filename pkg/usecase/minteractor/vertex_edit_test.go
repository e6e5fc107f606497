// 指示: miu200521358
package minteractor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// newVertexSceneForTest はスナップ先と編集対象のメッシュを持つシーンを生成する。
func newVertexSceneForTest(t *testing.T) *model.Scene {
	t.Helper()
	snap, cloth := newSnapMeshesForTest(t)
	scene := model.NewScene()
	scene.Meshes = append(scene.Meshes, snap, cloth)
	return scene
}

func TestEditVerticesSnapSavesWithModeSuffix(t *testing.T) {
	inPath := filepath.Join("scenes", "outfit.yaml")
	repository := newMemorySceneRepositoryForTest()
	repository.scenes[inPath] = newVertexSceneForTest(t)
	uc := NewDazToArpUsecase(DazToArpUsecaseDeps{SceneReader: repository, SceneWriter: repository})

	result, err := uc.EditVertices(VertexEditRequest{
		Mode:      VertexEditSnap,
		InputPath: inPath,
		Meshes:    []string{"cloth"},
		SnapMesh:  "body",
		Distance:  DefaultSnapDistance,
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	wantPath := filepath.Join("scenes", "outfit_snap.yaml")
	if result.OutputPath != wantPath || repository.saved[wantPath] != result.Scene {
		t.Fatalf("output mismatch: %s", result.OutputPath)
	}
	if len(result.Snap.Snapped) != 2 {
		t.Fatalf("snapped mismatch: %v", result.Snap.Snapped)
	}
	cloth, err := result.Scene.Mesh("cloth")
	if err != nil {
		t.Fatalf("mesh missing: %v", err)
	}
	assertVecNearForTest(t, "cloth[1]", cloth.Vertices[1], r3.Vec{})
}

func TestEditVerticesSelectNear(t *testing.T) {
	scene := newVertexSceneForTest(t)
	uc := NewDazToArpUsecase(DazToArpUsecaseDeps{})

	result, err := uc.EditVertices(VertexEditRequest{Mode: VertexEditSelectNear, Scene: scene, Distance: 0.01})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if result.OutputPath != "" {
		t.Fatalf("scene without writer should not be saved: %s", result.OutputPath)
	}
	if result.Select.Seeds != 4 || len(result.Select.Selected) != 3 {
		t.Fatalf("select mismatch: %+v", result.Select)
	}
}

func TestEditVerticesErrors(t *testing.T) {
	uc := NewDazToArpUsecase(DazToArpUsecaseDeps{SceneReader: newMemorySceneRepositoryForTest()})

	if _, err := uc.EditVertices(VertexEditRequest{Mode: VertexEditSnap, InputPath: "missing.yaml"}); !errors.Is(err, ErrSceneLoadFailed) {
		t.Fatalf("expected ErrSceneLoadFailed: %v", err)
	}
	if _, err := uc.EditVertices(VertexEditRequest{Mode: VertexEditSnap, Scene: newVertexSceneForTest(t), SnapMesh: "hair"}); err == nil {
		t.Fatalf("unknown snap mesh should fail")
	}
	if _, err := uc.EditVertices(VertexEditRequest{Mode: VertexEditSnap, Scene: newVertexSceneForTest(t), Meshes: []string{"hair"}, SnapMesh: "body"}); err == nil {
		t.Fatalf("unknown target mesh should fail")
	}
	if _, err := uc.EditVertices(VertexEditRequest{Mode: "smooth", Scene: newVertexSceneForTest(t)}); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}
