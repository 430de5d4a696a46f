//go:build mage

package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
)

type pkgStats struct {
	prod, test int
}

// Stats prints Go lines of code per package, split into production and tests.
func Stats() error {
	byPkg := make(map[string]*pkgStats)

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			switch d.Name() {
			case "vendor", ".git", binaryDir, "magefiles", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		count, err := countLines(path)
		if err != nil {
			return nil
		}
		dir := filepath.Dir(path)
		s, ok := byPkg[dir]
		if !ok {
			s = &pkgStats{}
			byPkg[dir] = s
		}
		if strings.HasSuffix(path, "_test.go") {
			s.test += count
		} else {
			s.prod += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(byPkg))
	for dir := range byPkg {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var total pkgStats
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "package\tprod\ttest\t")
	for _, dir := range dirs {
		s := byPkg[dir]
		total.prod += s.prod
		total.test += s.test
		fmt.Fprintf(tw, "%s\t%d\t%d\t\n", dir, s.prod, s.test)
	}
	fmt.Fprintf(tw, "total\t%d\t%d\t\n", total.prod, total.test)
	return tw.Flush()
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
