package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// statRoots are the trees holding pantry packages.
var statRoots = []string{"cmd", "internal", "pkg"}

// pkgStats is the line and test count of one package directory.
type pkgStats struct {
	Package   string `json:"package"`
	ProdLines int    `json:"go_loc_prod"`
	TestLines int    `json:"go_loc_test"`
	Tests     int    `json:"tests"`
}

// Stats prints one JSON record per pantry package, then a "total" record.
func Stats() error {
	byPkg := map[string]*pkgStats{}

	for _, root := range statRoots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") {
				return nil
			}
			lines, tests, err := countFile(path)
			if err != nil {
				return fmt.Errorf("count %s: %w", path, err)
			}

			dir := filepath.ToSlash(filepath.Dir(path))
			s, ok := byPkg[dir]
			if !ok {
				s = &pkgStats{Package: dir}
				byPkg[dir] = s
			}
			if strings.HasSuffix(path, "_test.go") {
				s.TestLines += lines
				s.Tests += tests
			} else {
				s.ProdLines += lines
			}
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	total := pkgStats{Package: "total"}
	enc := json.NewEncoder(os.Stdout)
	for _, dir := range slices.Sorted(maps.Keys(byPkg)) {
		s := byPkg[dir]
		total.ProdLines += s.ProdLines
		total.TestLines += s.TestLines
		total.Tests += s.Tests
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return enc.Encode(total)
}

// countFile returns the line count of a Go file and how many top-level
// Test functions it declares.
func countFile(path string) (lines, tests int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		if strings.HasPrefix(scanner.Text(), "func Test") {
			tests++
		}
	}
	return lines, tests, scanner.Err()
}
