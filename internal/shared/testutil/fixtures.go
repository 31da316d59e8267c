package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DatasetHeader is the minimal header the loader accepts
const DatasetHeader = "full_name,neo,pha,diameter,albedo,q,moid\n"

// SampleDataset has one plain, one near-Earth and one hazardous object.
// Apophis has no albedo so the albedo mean covers two samples.
const SampleDataset = DatasetHeader +
	"1 Ceres,N,N,939.4,0.09,2.55,1.59\n" +
	"433 Eros,Y,N,16.84,0.25,1.13,0.149\n" +
	"99942 Apophis,Y,Y,0.34,,0.746,0.05\n"

// WriteDataset writes content to dir/name and returns the path
func WriteDataset(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write dataset %s: %v", path, err)
	}
	return path
}
