package maprelief

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// SaveSTL writes the mesh as a binary STL file. The mesh is encoded fully
// in memory first & written via rename, so a failed run leaves no partial
// file behind.
func (m *Mesh) SaveSTL(fpath string) error {
	tris := make([]*model3d.Triangle, len(m.Triangles))
	for i := range m.Triangles {
		tris[i] = m.triangle3d(i)
	}

	err := writeFile(fpath, model3d.EncodeSTL(tris))
	if err != nil {
		return errors.Wrapf(err, "failed to write stl %s", fpath)
	}
	return nil
}

// Diagnostics computes the diagnostic record for the mesh.
// A non-watertight mesh is a warning for the caller to surface, not an
// error - we never fail a run over it.
func (m *Mesh) Diagnostics() *Diagnostics {
	return &Diagnostics{
		Vertices:   len(m.Vertices),
		Faces:      len(m.Triangles),
		VolumeMM3:  m.Volume(),
		Watertight: m.Watertight(),
	}
}
