package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// Reference points in lon/lat order matching testdata/neighborhoods.sql
var (
	// SouthEndPoint лежит только в полигоне South End
	SouthEndPoint = [2]float64{-71.0650, 42.3400}

	// LandmarkPoint лежит и в South End, и в наложенном Landmark District
	LandmarkPoint = [2]float64{-71.0750, 42.3410}

	// HarborPoint - вода Бостонской гавани, вне всех полигонов
	HarborPoint = [2]float64{-71.0300, 42.3400}
)
