package service

import (
	"testing"
	"time"

	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(date string, amount float64, category string) model.ExpenseRecord {
	t, err := model.ParseEntryDate(date)
	if err != nil {
		panic(err)
	}
	return model.ExpenseRecord{Amount: amount, Category: category, OccurredAt: t}
}

func TestAggregateByDate_Basic(t *testing.T) {
	records := []model.ExpenseRecord{
		rec("2024-01-01", 10, "Food"),
		rec("2024-01-02", 5, "Bills"),
		rec("2024-01-01", 15, "Transportation"),
	}

	days := AggregateByDate(records)
	require.Len(t, days, 2)

	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.InDelta(t, 25.0, days[0].Total, 1e-9)
	assert.Equal(t, []string{"Food", "Transportation"}, days[0].Categories)

	assert.Equal(t, "2024-01-02", days[1].Date)
	assert.InDelta(t, 5.0, days[1].Total, 1e-9)
	assert.Equal(t, []string{"Bills"}, days[1].Categories)
}

func TestAggregateByDate_Empty(t *testing.T) {
	// 空输入必须产出空序列，不能造出默认的零桶
	assert.Empty(t, AggregateByDate(nil))
	assert.Empty(t, AggregateByDate([]model.ExpenseRecord{}))
}

// 同一组记录不管以什么顺序输入，每个桶的总额和分类集合都必须一致，
// 且输出始终按桶内最早一笔的时间升序
func TestAggregateByDate_PermutationInvariant(t *testing.T) {
	base := []model.ExpenseRecord{
		rec("2024-03-01", 12.5, "Food"),
		rec("2024-03-01", 7.5, "Food"),
		rec("2024-03-02", 30, "Shopping"),
		rec("2024-03-05", 9.9, "Transportation"),
		rec("2024-03-02", 1.1, "Bills"),
	}

	permutations := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{3, 1, 0, 4, 2},
	}

	type bucket struct {
		total      float64
		categories map[string]bool
	}
	canonical := func(days []AggregatedDay) map[string]bucket {
		out := make(map[string]bucket)
		for _, d := range days {
			set := make(map[string]bool)
			for _, c := range d.Categories {
				set[c] = true
			}
			out[d.Date] = bucket{total: d.Total, categories: set}
		}
		return out
	}

	var want map[string]bucket
	for _, perm := range permutations {
		input := make([]model.ExpenseRecord, 0, len(base))
		for _, idx := range perm {
			input = append(input, base[idx])
		}

		days := AggregateByDate(input)
		require.Len(t, days, 3)

		// 输出有序
		for i := 1; i < len(days); i++ {
			assert.Less(t, days[i-1].Date, days[i].Date)
		}

		got := canonical(days)
		if want == nil {
			want = got
			continue
		}
		assert.Equal(t, want, got)
	}
}

func TestAggregateByDate_UsesUTCCalendarDay(t *testing.T) {
	// 即便 time.Time 带着别的时区，切桶也必须按 UTC 的年月日来
	// 北京时间 2024-01-02 04:00 = UTC 2024-01-01 20:00，应落进 01-01 的桶
	cst := time.FixedZone("CST", 8*3600)
	records := []model.ExpenseRecord{
		{Amount: 10, Category: "Food", OccurredAt: time.Date(2024, 1, 2, 4, 0, 0, 0, cst)},
		{Amount: 20, Category: "Bills", OccurredAt: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)},
		{Amount: 30, Category: "Food", OccurredAt: time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)},
	}

	days := AggregateByDate(records)
	require.Len(t, days, 2)

	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.InDelta(t, 30.0, days[0].Total, 1e-9)
	assert.Equal(t, "2024-01-02", days[1].Date)
	assert.InDelta(t, 30.0, days[1].Total, 1e-9)
}

func TestAggregateByDate_SortsByEarliestContribution(t *testing.T) {
	// 排序 key 是桶内最早一笔的原始时间，而不是记录的输入顺序
	records := []model.ExpenseRecord{
		{Amount: 1, Category: "Food", OccurredAt: time.Date(2024, 5, 3, 18, 0, 0, 0, time.UTC)},
		{Amount: 2, Category: "Bills", OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		{Amount: 3, Category: "Food", OccurredAt: time.Date(2024, 5, 3, 6, 0, 0, 0, time.UTC)},
	}

	days := AggregateByDate(records)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-05-01", days[0].Date)
	assert.Equal(t, "2024-05-03", days[1].Date)
}
