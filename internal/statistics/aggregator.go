// Package statistics computes period spending snapshots from ledger data.
//
// The aggregator is a pure function of the slices its Source returns: it
// holds no state, performs no I/O of its own, and either produces a complete
// snapshot or returns an error. Requests for different users or periods are
// safe to run concurrently.
package statistics

import (
	"sort"
	"strconv"
	"strings"

	"gagyebu/internal/models"
	"gagyebu/internal/period"
)

// installmentFallbackDescription is used for installment details whose
// owning record has no memo.
const installmentFallbackDescription = "Installment payment"

// Aggregator builds statistics snapshots from a Source.
type Aggregator struct {
	src Source
}

// NewAggregator creates an Aggregator backed by the given source.
func NewAggregator(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// Aggregate computes the snapshot for the user over the resolved window.
// Expense totals blend non-installment records (by transaction date) with
// installment dues (by due date); the previous window feeds the comparison
// figures in the overview.
func (a *Aggregator) Aggregate(userID uint, w period.Window) (*Snapshot, error) {
	incomes, err := a.src.Records(userID, models.RecordTypeIncome, w.CurrentStart, w.CurrentEnd)
	if err != nil {
		return nil, err
	}
	expenses, err := a.src.Records(userID, models.RecordTypeExpense, w.CurrentStart, w.CurrentEnd)
	if err != nil {
		return nil, err
	}
	dues, err := a.src.DueEntries(userID, w.CurrentStart, w.CurrentEnd)
	if err != nil {
		return nil, err
	}
	prevExpenses, err := a.src.Records(userID, models.RecordTypeExpense, w.PreviousStart, w.PreviousEnd)
	if err != nil {
		return nil, err
	}
	prevDues, err := a.src.DueEntries(userID, w.PreviousStart, w.PreviousEnd)
	if err != nil {
		return nil, err
	}

	totalIncome := sumAmounts(incomes)
	normalExpense := sumAmounts(expenses)
	installmentExpense := sumDues(dues)
	totalExpense := normalExpense + installmentExpense
	lastPeriodExpense := sumAmounts(prevExpenses) + sumDues(prevDues)

	return &Snapshot{
		Overview: Overview{
			TotalIncome:       totalIncome,
			TotalExpense:      totalExpense,
			LastPeriodExpense: lastPeriodExpense,
			NetIncome:         totalIncome - totalExpense,
			ChangePercent:     percentOf(totalExpense-lastPeriodExpense, lastPeriodExpense),
		},
		CategorySpending:      categoryBreakdown(expenses, dues, totalExpense),
		EmotionalSpending:     emotionBreakdown(expenses, dues, totalExpense),
		PaymentMethodSpending: paymentMethodBreakdown(expenses, dues, totalExpense),
		Installments:          installmentSummary(dues, totalIncome),
		Insights:              []Insight{},
	}, nil
}

func sumAmounts(records []models.Record) int64 {
	var sum int64
	for _, r := range records {
		sum += r.Amount
	}
	return sum
}

func sumDues(dues []DueEntry) int64 {
	var sum int64
	for _, d := range dues {
		sum += d.Due.MonthlyAmount
	}
	return sum
}

// group accumulates one breakdown bucket. A due counts once toward the
// transaction count, independent of its owning record.
type group struct {
	amount int64
	count  int
}

func categoryBreakdown(expenses []models.Record, dues []DueEntry, totalExpense int64) []CategorySpending {
	groups := make(map[uint]*group)
	names := make(map[uint]models.Category)

	for _, r := range expenses {
		g := upsert(groups, r.CategoryID)
		g.amount += r.Amount
		g.count++
		names[r.CategoryID] = r.Category
	}
	for _, d := range dues {
		g := upsert(groups, d.Record.CategoryID)
		g.amount += d.Due.MonthlyAmount
		g.count++
		names[d.Record.CategoryID] = d.Record.Category
	}

	out := make([]CategorySpending, 0, len(groups))
	for id, g := range groups {
		out = append(out, CategorySpending{
			CategoryID:       id,
			CategoryName:     names[id].Name,
			CategoryIcon:     names[id].IconName,
			Amount:           g.amount,
			Percentage:       percentOf(g.amount, totalExpense),
			TransactionCount: g.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out
}

func emotionBreakdown(expenses []models.Record, dues []DueEntry, totalExpense int64) []EmotionalSpending {
	groups := make(map[uint]*group)
	names := make(map[uint]models.Emotion)

	for _, r := range expenses {
		g := upsert(groups, r.EmotionID)
		g.amount += r.Amount
		g.count++
		names[r.EmotionID] = r.Emotion
	}
	for _, d := range dues {
		g := upsert(groups, d.Record.EmotionID)
		g.amount += d.Due.MonthlyAmount
		g.count++
		names[d.Record.EmotionID] = d.Record.Emotion
	}

	out := make([]EmotionalSpending, 0, len(groups))
	for id, g := range groups {
		out = append(out, EmotionalSpending{
			EmotionID:        id,
			EmotionName:      names[id].Name,
			EmotionIcon:      names[id].IconName,
			Amount:           g.amount,
			Percentage:       percentOf(g.amount, totalExpense),
			TransactionCount: g.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmotionID < out[j].EmotionID })
	return out
}

func paymentMethodBreakdown(expenses []models.Record, dues []DueEntry, totalExpense int64) []PaymentMethodSpending {
	groups := make(map[models.PaymentMethod]*group)

	for _, r := range expenses {
		g := upsert(groups, r.PaymentMethod)
		g.amount += r.Amount
		g.count++
	}
	for _, d := range dues {
		g := upsert(groups, d.Record.PaymentMethod)
		g.amount += d.Due.MonthlyAmount
		g.count++
	}

	out := make([]PaymentMethodSpending, 0, len(groups))
	for method, g := range groups {
		out = append(out, PaymentMethodSpending{
			PaymentMethod:     string(method),
			PaymentMethodName: method.DisplayName(),
			Amount:            g.amount,
			Percentage:        percentOf(g.amount, totalExpense),
			TransactionCount:  g.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentMethod < out[j].PaymentMethod })
	return out
}

func upsert[K comparable](groups map[K]*group, key K) *group {
	g, ok := groups[key]
	if !ok {
		g = &group{}
		groups[key] = g
	}
	return g
}

func installmentSummary(dues []DueEntry, totalIncome int64) InstallmentSummary {
	monthlyPayment := sumDues(dues)

	activeRecords := make(map[uint]struct{})
	for _, d := range dues {
		activeRecords[d.Due.RecordID] = struct{}{}
	}

	details := make([]InstallmentDetail, 0, len(dues))
	for _, d := range dues {
		details = append(details, InstallmentDetail{
			RecordID:      d.Due.RecordID,
			Description:   installmentDescription(d.Record.Memo),
			TotalAmount:   d.Record.Amount,
			MonthlyAmount: d.Due.MonthlyAmount,
			CurrentMonth:  d.Due.Index,
			TotalMonths:   d.Record.InstallmentMonths,
			Progress:      progress(d.Due.Index, d.Record.InstallmentMonths),
			ScheduledDate: d.Due.ScheduledDate,
		})
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].ScheduledDate.Before(details[j].ScheduledDate)
	})

	return InstallmentSummary{
		ActiveCount:    len(activeRecords),
		MonthlyPayment: monthlyPayment,
		PaymentRatio:   percentOf(monthlyPayment, totalIncome),
		Details:        details,
	}
}

func installmentDescription(memo string) string {
	if strings.TrimSpace(memo) == "" {
		return installmentFallbackDescription
	}
	return memo
}

func progress(index, totalMonths int) string {
	return strconv.Itoa(index) + "/" + strconv.Itoa(totalMonths)
}
