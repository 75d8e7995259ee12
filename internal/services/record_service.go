package services

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/installment"
	"gagyebu/internal/models"
	"gagyebu/internal/pagination"
)

// recordService handles record-related business logic, including
// materializing installment schedules on the write path.
type recordService struct {
	db              *gorm.DB
	categoryService CategoryServicer
	emotionService  EmotionServicer
}

// NewRecordService creates a new RecordServicer.
func NewRecordService(db *gorm.DB, categoryService CategoryServicer, emotionService EmotionServicer) RecordServicer {
	return &recordService{
		db:              db,
		categoryService: categoryService,
		emotionService:  emotionService,
	}
}

// CreateRecord validates and persists a new record. For installment
// purchases the full due schedule is created in the same transaction, so
// readers never observe a record with a partial schedule.
func (s *recordService) CreateRecord(userID uint, in RecordInput) (*models.Record, error) {
	if err := validateRecordInput(in); err != nil {
		return nil, err
	}

	// Verify the referenced catalog entries exist and are visible.
	if _, err := s.categoryService.GetCategoryByID(userID, in.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.emotionService.GetEmotionByID(userID, in.EmotionID); err != nil {
		return nil, err
	}

	record := &models.Record{
		UserID:            userID,
		Amount:            in.Amount,
		Type:              in.Type,
		Date:              in.Date,
		CategoryID:        in.CategoryID,
		EmotionID:         in.EmotionID,
		PaymentMethod:     in.PaymentMethod,
		IsInstallment:     in.IsInstallment,
		InstallmentMonths: in.InstallmentMonths,
		Memo:              in.Memo,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return regenerateDues(tx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateRecord applies a full-replace update of the mutable fields and
// re-derives the installment schedule from scratch. Old dues are always
// discarded first; partial patching of schedules is not supported.
func (s *recordService) UpdateRecord(userID, recordID uint, upd RecordUpdate) (*models.Record, error) {
	record, err := s.GetRecordByID(userID, recordID)
	if err != nil {
		return nil, err
	}

	if upd.CategoryID != nil {
		category, err := s.categoryService.GetCategoryByID(userID, *upd.CategoryID)
		if err != nil {
			return nil, err
		}
		record.CategoryID = *upd.CategoryID
		record.Category = *category
	}
	if upd.EmotionID != nil {
		emotion, err := s.emotionService.GetEmotionByID(userID, *upd.EmotionID)
		if err != nil {
			return nil, err
		}
		record.EmotionID = *upd.EmotionID
		record.Emotion = *emotion
	}
	if upd.Amount != nil {
		record.Amount = *upd.Amount
	}
	if upd.Type != nil {
		record.Type = *upd.Type
	}
	if upd.Date != nil {
		record.Date = *upd.Date
	}
	if upd.PaymentMethod != nil {
		record.PaymentMethod = *upd.PaymentMethod
	}
	if upd.IsInstallment != nil {
		record.IsInstallment = *upd.IsInstallment
	}
	if upd.InstallmentMonths != nil {
		record.InstallmentMonths = *upd.InstallmentMonths
	}
	if upd.Memo != nil {
		record.Memo = *upd.Memo
	}

	if err := validateRecordInput(RecordInput{
		Amount:            record.Amount,
		Type:              record.Type,
		Date:              record.Date,
		IsInstallment:     record.IsInstallment,
		InstallmentMonths: record.InstallmentMonths,
	}); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Replace-set: drop the old schedule before saving, then build the
		// new one from the updated terms inside the same transaction.
		if err := tx.Unscoped().Where("record_id = ?", record.ID).Delete(&models.InstallmentDue{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Save only the record's own columns. Saving associations would write
		// the preloaded Category/Emotion structs back and clobber a reassigned
		// foreign key with the old value.
		if err := tx.Omit(clause.Associations).Save(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return regenerateDues(tx, record)
	})
	if err != nil {
		return nil, err
	}

	record.Dues = nil
	return record, nil
}

// regenerateDues materializes the due schedule for an installment record.
// Callers must have removed any previous schedule first.
func regenerateDues(tx *gorm.DB, record *models.Record) error {
	if !record.IsInstallment {
		return nil
	}
	dues, err := installment.Schedule(record)
	if err != nil {
		return err
	}
	if err := tx.Create(&dues).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRecordByID retrieves a record by ID for a specific user.
func (s *recordService) GetRecordByID(userID, recordID uint) (*models.Record, error) {
	var record models.Record
	err := s.db.Preload("Category").Preload("Emotion").
		Where("id = ? AND user_id = ?", recordID, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// GetUserRecords retrieves a paginated, filtered list of the user's records.
func (s *recordService) GetUserRecords(userID uint, page pagination.PageRequest, filter RecordFilter) (*pagination.PageResponse[models.Record], error) {
	page.Defaults()

	base := s.db.Model(&models.Record{}).Where("user_id = ?", userID)
	base = applyRecordFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.Record
	if err := base.Preload("Category").Preload("Emotion").
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyRecordFilters(q *gorm.DB, f RecordFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	return q
}

// GetMonthlyRecords returns the merged calendar view for one month: plain
// records at their transaction dates plus installment dues at their
// scheduled dates, newest first.
func (s *recordService) GetMonthlyRecords(userID uint, year, month int) ([]RecordView, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	var records []models.Record
	err := s.db.Preload("Category").Preload("Emotion").
		Where("user_id = ? AND is_installment = ? AND date BETWEEN ? AND ?", userID, false, start, end).
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var dues []models.InstallmentDue
	err = s.db.Preload("Record").Preload("Record.Category").Preload("Record.Emotion").
		Joins("JOIN records ON records.id = installment_dues.record_id AND records.deleted_at IS NULL").
		Where("records.user_id = ? AND installment_dues.scheduled_date BETWEEN ? AND ?", userID, start, end).
		Find(&dues).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]RecordView, 0, len(records)+len(dues))
	for _, r := range records {
		views = append(views, recordView(r))
	}
	for _, d := range dues {
		views = append(views, dueView(d))
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].Date.After(views[j].Date) })

	return views, nil
}

func recordView(r models.Record) RecordView {
	return RecordView{
		ID:                r.ID,
		Amount:            r.Amount,
		Type:              r.Type,
		Date:              r.Date,
		CategoryID:        r.CategoryID,
		CategoryName:      r.Category.Name,
		CategoryIcon:      r.Category.IconName,
		EmotionID:         r.EmotionID,
		EmotionName:       r.Emotion.Name,
		EmotionIcon:       r.Emotion.IconName,
		PaymentMethod:     r.PaymentMethod,
		IsInstallment:     r.IsInstallment,
		InstallmentMonths: r.InstallmentMonths,
		Memo:              r.Memo,
	}
}

func dueView(d models.InstallmentDue) RecordView {
	r := d.Record
	v := recordView(r)
	v.Date = d.ScheduledDate // the due's payment date, not the purchase date
	v.IsInstallment = true
	v.MonthlyAmount = &d.MonthlyAmount
	v.InstallmentProgress = fmtProgress(d.Index, r.InstallmentMonths)
	return v
}

func fmtProgress(index, totalMonths int) string {
	return strconv.Itoa(index) + "/" + strconv.Itoa(totalMonths)
}

func validateRecordInput(in RecordInput) error {
	if in.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.Type != models.RecordTypeIncome && in.Type != models.RecordTypeExpense {
		return apperrors.ErrInvalidRecordType
	}
	if in.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if in.Date.After(time.Now()) {
		return apperrors.ErrFutureDate
	}
	if in.IsInstallment && in.InstallmentMonths < 1 {
		return apperrors.ErrInvalidInstallment
	}
	return nil
}
