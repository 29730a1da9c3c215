package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/jayparimi/beyond-january/internal/domain"
)

// File is one rendered export artifact before archiving.
type File struct {
	Name string
	Data []byte
}

var columns = []string{"day", "goal", "category", "status", "note"}

// RenderCSV renders every check-in joined with its goal into one CSV, ordered
// by day then goal title.
func RenderCSV(goals []domain.Goal, checkins []domain.CheckIn) ([]byte, error) {
	titles := make(map[string]domain.Goal, len(goals))
	for _, g := range goals {
		titles[g.ID] = g
	}

	rows := make([]domain.CheckIn, len(checkins))
	copy(rows, checkins)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		ti, tj := titles[rows[i].GoalID].Title, titles[rows[j].GoalID].Title
		if ti != tj {
			return ti < tj
		}
		return rows[i].GoalID < rows[j].GoalID
	})

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("export: write header: %w", err)
	}
	for _, row := range rows {
		goal := titles[row.GoalID]
		title := goal.Title
		if title == "" {
			title = row.GoalID
		}
		record := []string{row.Day, title, goal.Category, string(row.Status), row.Note}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPerGoal renders one CSV per goal, including goals with no rows in the
// window, with slugged deduplicated file names.
func RenderPerGoal(goals []domain.Goal, checkins []domain.CheckIn) ([]File, error) {
	ordered := make([]domain.Goal, len(goals))
	copy(ordered, goals)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Title != ordered[j].Title {
			return ordered[i].Title < ordered[j].Title
		}
		return ordered[i].ID < ordered[j].ID
	})

	byGoal := make(map[string][]domain.CheckIn, len(goals))
	for _, row := range checkins {
		byGoal[row.GoalID] = append(byGoal[row.GoalID], row)
	}

	files := make([]File, 0, len(ordered))
	used := make(map[string]int, len(ordered))
	for _, goal := range ordered {
		data, err := RenderCSV([]domain.Goal{goal}, byGoal[goal.ID])
		if err != nil {
			return nil, err
		}
		name := slugify(goal.Title)
		if name == "" {
			name = goal.ID
		}
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		files = append(files, File{Name: name + ".csv", Data: data})
	}
	return files, nil
}

// slugify lowercases and reduces a title to hyphen-separated alphanumerics.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
