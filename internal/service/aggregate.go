package service

import (
	"slices"
	"sort"
	"time"

	"github.com/rody-huancas/expense-tracker-api/internal/model"
)

// AggregatedDay 按 UTC 日历日聚合出的一个桶，只为图表渲染而生，从不落库
type AggregatedDay struct {
	// Date 形如 2024-01-15，按 UTC 年月日切分
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	// Categories 当天出现过的分类，去重且保持首次出现的顺序
	Categories []string `json:"categories"`

	// earliest 桶内最早一笔记录的原始时间，作为升序排序的 key
	earliest time.Time
}

// AggregateByDate 把无序的记录集合聚合成按天的桶序列
// 纯函数：不做任何 IO，同样的输入必然得到同样的输出
// 输入为空时返回空序列，渲染空状态是调用方的责任，这里不造默认桶
func AggregateByDate(records []model.ExpenseRecord) []AggregatedDay {
	buckets := make(map[string]*AggregatedDay, len(records))
	out := make([]*AggregatedDay, 0, len(records))

	for _, r := range records {
		// 必须用 UTC 的年月日切 key，用本地时间会因为时区偏移把记录挪到前后一天
		t := r.OccurredAt.UTC()
		key := r.DateKey()

		b, ok := buckets[key]
		if !ok {
			b = &AggregatedDay{Date: key, earliest: t}
			buckets[key] = b
			out = append(out, b)
		}

		b.Total += r.Amount
		if t.Before(b.earliest) {
			b.earliest = t
		}
		if !slices.Contains(b.Categories, r.Category) {
			b.Categories = append(b.Categories, r.Category)
		}
	}

	// 稳定排序：桶的排序 key 相等时保持输入顺序
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].earliest.Before(out[j].earliest)
	})

	result := make([]AggregatedDay, 0, len(out))
	for _, b := range out {
		result = append(result, *b)
	}
	return result
}
