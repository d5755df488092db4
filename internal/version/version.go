// Package version сообщает метаданные сборки.
//
// Значения задаются через -ldflags "-X cognitive-grid/internal/version.BuildDate=...".
// Без ldflags используется VCS-штамп, который записывает тулчейн Go.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

var buildEpoch = time.Date(
	2025, time.December, 4,
	0, 0, 0, 0,
	time.UTC,
)

// readBuildInfo подменяется в тестах.
var readBuildInfo = debug.ReadBuildInfo

// Info - метаданные сборки в структурированном виде.
type Info struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	Modified   bool
	GoVersion  string
	Calculated bool
	Error      string
}

// BuildID возвращает число дней от эпохи сборок до date.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Обе даты - полночь UTC, часы делятся на 24 без остатка.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Get собирает метаданные сборки. Можно вызывать в любой момент.
func Get() Info {
	info := Info{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	if bi, ok := readBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if info.BuildDate == "" && len(s.Value) >= len("2006-01-02") {
					info.BuildDate = s.Value[:len("2006-01-02")]
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	id, err := BuildID(info.BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String возвращает строку сборки для человека.
func String() string {
	info := Get()

	if !info.Calculated {
		return fmt.Sprintf("gridtool build unknown (%s)", info.Error)
	}

	commit := coalesce(info.Commit, "unknown")
	if info.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf(
		"gridtool build %d (%s) commit[%s] branch[%s] %s",
		info.BuildID,
		info.BuildDate,
		commit,
		coalesce(info.Branch, "unknown"),
		coalesce(info.GoVersion, "go?"),
	)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
