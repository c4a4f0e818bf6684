//go:build unit

// Package memuow is an in-memory shared.UnitOfWork. Within snapshots the store and restores
// it when the callback fails, so command tests can assert rollback without a database.
package memuow

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ItemAvailable        = "AVAILABLE"
	ItemPendingRetrieval = "PENDING_RETRIEVAL"
	ItemSold             = "SOLD"
	NotificationQueued   = "queued"
)

type OccupancyRow struct {
	ID           uuid.UUID
	BookCaseID   uuid.UUID
	OwnerID      uuid.UUID
	OccupiedAt   time.Time
	UnOccupiedAt *time.Time
	SuspendedAt  *time.Time
	Expiration   time.Time
}

type ObligationRow struct {
	ID          uuid.UUID
	OccupancyID uuid.UUID
	OwnerID     uuid.UUID
	Month       settlement.Month
	Amount      int64
	Deducted    int64
	Remaining   int64
	Status      settlement.Status
	PaidAt      *time.Time
}

type DepositRow struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Amount    int64
	Remaining int64
	Status    deposit.Status
}

type OffsetRow struct {
	ID           uuid.UUID
	DepositID    uuid.UUID
	ObligationID uuid.UUID
	Amount       int64
	CreatedAt    time.Time
}

type ItemRow struct {
	ID         uuid.UUID
	BookCaseID uuid.UUID
	State      string
	Unsettled  bool
}

type JobRow struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
	Status  string
}

type state struct {
	bookCases   map[uuid.UUID]shared.BookCaseSnapshot
	occupancies map[uuid.UUID]OccupancyRow
	obligations map[uuid.UUID]ObligationRow
	deposits    map[uuid.UUID]DepositRow // keyed by owner
	offsets     []OffsetRow
	items       map[uuid.UUID]ItemRow
	jobs        []JobRow
}

func (s state) clone() state {
	return state{
		bookCases:   maps.Clone(s.bookCases),
		occupancies: maps.Clone(s.occupancies),
		obligations: maps.Clone(s.obligations),
		deposits:    maps.Clone(s.deposits),
		offsets:     slices.Clone(s.offsets),
		items:       maps.Clone(s.items),
		jobs:        slices.Clone(s.jobs),
	}
}

// Store implements shared.UnitOfWork, shared.Tx and shared.CommandReads over maps.
type Store struct {
	mu sync.Mutex
	st state

	// OnLockDeposit runs before every deposit row lock; it may return an error or panic.
	OnLockDeposit func(ownerID uuid.UUID) error
	// OnLockObligation runs before every obligation row lock; it may rewrite the stored row.
	OnLockObligation func(id uuid.UUID)
	// ConcurrentDeposits are inserted just before a deposit insert for the same owner, which then loses.
	ConcurrentDeposits map[uuid.UUID]DepositRow
	// ObligationInsertRows overrides the affected-row count of an obligation insert.
	ObligationInsertRows func(ob *settlement.Obligation) int64
	// DuplicateOnCreate makes the next occupancy insert for a book case fail like the partial unique index.
	DuplicateOnCreate map[uuid.UUID]bool

	Commits   int
	Rollbacks int
}

func New() *Store {
	return &Store{
		st: state{
			bookCases:   map[uuid.UUID]shared.BookCaseSnapshot{},
			occupancies: map[uuid.UUID]OccupancyRow{},
			obligations: map[uuid.UUID]ObligationRow{},
			deposits:    map[uuid.UUID]DepositRow{},
			items:       map[uuid.UUID]ItemRow{},
		},
		DuplicateOnCreate:  map[uuid.UUID]bool{},
		ConcurrentDeposits: map[uuid.UUID]DepositRow{},
	}
}

var (
	_ shared.UnitOfWork   = (*Store)(nil)
	_ shared.Tx           = (*Store)(nil)
	_ shared.CommandReads = (*Store)(nil)
)

// ================================================================================
// Seeding and inspection
// ================================================================================

func (s *Store) AddBookCase(price int64) uuid.UUID {
	id := uuid.New()
	s.st.bookCases[id] = shared.BookCaseSnapshot{
		ID:           id,
		TypeID:       uuid.New(),
		Name:         "case-" + id.String()[:8],
		MonthlyPrice: money.MustNew(price),
	}
	return id
}

func (s *Store) AddItem(bookCaseID uuid.UUID, state string, unsettledSale bool) uuid.UUID {
	id := uuid.New()
	s.st.items[id] = ItemRow{ID: id, BookCaseID: bookCaseID, State: state, Unsettled: unsettledSale}
	return id
}

func (s *Store) SettleSales(bookCaseID uuid.UUID) {
	for id, it := range s.st.items {
		if it.BookCaseID == bookCaseID {
			it.Unsettled = false
			s.st.items[id] = it
		}
	}
}

func (s *Store) PutOccupancy(row OccupancyRow) {
	s.st.occupancies[row.ID] = row
}

func (s *Store) PutObligation(row ObligationRow) {
	s.st.obligations[row.ID] = row
}

func (s *Store) PutDeposit(row DepositRow) {
	s.st.deposits[row.OwnerID] = row
}

func (s *Store) Occupancy(id uuid.UUID) (OccupancyRow, bool) {
	row, ok := s.st.occupancies[id]
	return row, ok
}

func (s *Store) OccupanciesOf(ownerID uuid.UUID) []OccupancyRow {
	var out []OccupancyRow
	for _, row := range s.st.occupancies {
		if row.OwnerID == ownerID {
			out = append(out, row)
		}
	}
	sortOccupancies(out)
	return out
}

// ObligationsOf returns the occupancy's obligations oldest month first.
func (s *Store) ObligationsOf(occupancyID uuid.UUID) []ObligationRow {
	var out []ObligationRow
	for _, row := range s.st.obligations {
		if row.OccupancyID == occupancyID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

func (s *Store) Obligation(id uuid.UUID) (ObligationRow, bool) {
	row, ok := s.st.obligations[id]
	return row, ok
}

func (s *Store) Deposit(ownerID uuid.UUID) (DepositRow, bool) {
	row, ok := s.st.deposits[ownerID]
	return row, ok
}

func (s *Store) Offsets() []OffsetRow {
	return slices.Clone(s.st.offsets)
}

func (s *Store) OffsetsFor(obligationID uuid.UUID) []OffsetRow {
	var out []OffsetRow
	for _, o := range s.st.offsets {
		if o.ObligationID == obligationID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) Item(id uuid.UUID) (ItemRow, bool) {
	row, ok := s.st.items[id]
	return row, ok
}

func (s *Store) Jobs() []JobRow {
	return slices.Clone(s.st.jobs)
}

// ================================================================================
// shared.UnitOfWork / shared.Tx
// ================================================================================

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if r := recover(); r != nil {
			s.st = snapshot
			s.Rollbacks++
			panic(r)
		}
	}()

	if err = fn(ctx, s); err != nil {
		s.st = snapshot
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads              { return s }
func (s *Store) Reads() shared.CommandReads                     { return s }
func (s *Store) DB() sqlc.DBTX                                  { return nil }
func (s *Store) Occupancies() shared.OccupancyRepository        { return occupancyRepo{s} }
func (s *Store) Obligations() shared.ObligationRepository       { return obligationRepo{s} }
func (s *Store) Deposits() shared.DepositRepository             { return depositRepo{s} }
func (s *Store) DepositOffsets() shared.DepositOffsetRepository { return offsetRepo{s} }
func (s *Store) Items() shared.ItemRepository                   { return itemRepo{s} }
func (s *Store) Notifications() shared.NotificationRepository   { return notificationRepo{s} }

// ================================================================================
// shared.CommandReads
// ================================================================================

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func (s *Store) BookCaseByID(_ context.Context, id uuid.UUID) (*shared.BookCaseSnapshot, error) {
	bc, ok := s.st.bookCases[id]
	if !ok {
		return nil, notFound("book case")
	}
	return &bc, nil
}

func (s *Store) HasUnsettledSales(_ context.Context, bookCaseID uuid.UUID) (bool, error) {
	for _, it := range s.st.items {
		if it.BookCaseID == bookCaseID && it.Unsettled {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ActiveOccupancyByBookCase(_ context.Context, bookCaseID uuid.UUID) (*occupancy.Occupancy, error) {
	for _, row := range s.st.occupancies {
		if row.BookCaseID == bookCaseID && row.UnOccupiedAt == nil {
			return toOccupancy(row), nil
		}
	}
	return nil, notFound("active occupancy")
}

func (s *Store) ActiveOccupancies(_ context.Context) ([]*occupancy.Occupancy, error) {
	var rows []OccupancyRow
	for _, row := range s.st.occupancies {
		if row.UnOccupiedAt == nil {
			rows = append(rows, row)
		}
	}
	sortOccupancies(rows)
	out := make([]*occupancy.Occupancy, len(rows))
	for i, row := range rows {
		out[i] = toOccupancy(row)
	}
	return out, nil
}

func (s *Store) CountActiveOccupancies(_ context.Context, ownerID uuid.UUID) (int64, error) {
	var n int64
	for _, row := range s.st.occupancies {
		if row.OwnerID == ownerID && row.UnOccupiedAt == nil {
			n++
		}
	}
	return n, nil
}

func (s *Store) OverdueObligations(_ context.Context, occupancyID uuid.UUID, before settlement.Month) ([]*settlement.Obligation, error) {
	var out []*settlement.Obligation
	for _, row := range s.ObligationsOf(occupancyID) {
		if row.Status == settlement.StatusUnpaid && row.Month.Before(before) {
			out = append(out, toObligation(row))
		}
	}
	return out, nil
}

func (s *Store) DepositByOwner(_ context.Context, ownerID uuid.UUID) (*deposit.Deposit, error) {
	row, ok := s.st.deposits[ownerID]
	if !ok {
		return nil, notFound("deposit")
	}
	return toDeposit(row)
}

// ================================================================================
// Repositories
// ================================================================================

type occupancyRepo struct{ s *Store }

func (r occupancyRepo) Create(_ context.Context, _ sqlc.DBTX, rec *occupancy.Occupancy) error {
	if r.s.DuplicateOnCreate[rec.BookCaseID()] {
		delete(r.s.DuplicateOnCreate, rec.BookCaseID())
		return infra.WrapRepoErr("failed to create occupancy", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	}
	for _, row := range r.s.st.occupancies {
		if row.BookCaseID == rec.BookCaseID() && row.UnOccupiedAt == nil {
			return infra.WrapRepoErr("failed to create occupancy", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
		}
	}
	r.s.st.occupancies[rec.ID()] = OccupancyRow{
		ID:           rec.ID(),
		BookCaseID:   rec.BookCaseID(),
		OwnerID:      rec.OwnerID(),
		OccupiedAt:   rec.OccupiedAt(),
		UnOccupiedAt: rec.UnOccupiedAt(),
		SuspendedAt:  rec.SuspendedAt(),
		Expiration:   rec.ExpirationDate(),
	}
	return nil
}

func (r occupancyRepo) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*occupancy.Occupancy, error) {
	row, ok := r.s.st.occupancies[id]
	if !ok {
		return nil, notFound("occupancy")
	}
	return toOccupancy(row), nil
}

func (r occupancyRepo) Save(_ context.Context, _ sqlc.DBTX, rec *occupancy.Occupancy) error {
	row, ok := r.s.st.occupancies[rec.ID()]
	if !ok {
		return errs.Mark(errs.Newf("occupancy update affected 0 rows"), errs.ErrPersistenceIntegrity)
	}
	row.UnOccupiedAt = rec.UnOccupiedAt()
	row.SuspendedAt = rec.SuspendedAt()
	r.s.st.occupancies[rec.ID()] = row
	return nil
}

type obligationRepo struct{ s *Store }

func (r obligationRepo) Create(_ context.Context, _ sqlc.DBTX, ob *settlement.Obligation) (int64, error) {
	if r.s.ObligationInsertRows != nil {
		if rows := r.s.ObligationInsertRows(ob); rows != 1 {
			return rows, nil
		}
	}
	r.s.st.obligations[ob.ID()] = fromObligation(ob)
	return 1, nil
}

func (r obligationRepo) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*settlement.Obligation, error) {
	if r.s.OnLockObligation != nil {
		r.s.OnLockObligation(id)
	}
	row, ok := r.s.st.obligations[id]
	if !ok {
		return nil, notFound("rental obligation")
	}
	return toObligation(row), nil
}

func (r obligationRepo) SaveDeduction(_ context.Context, _ sqlc.DBTX, ob *settlement.Obligation) error {
	if _, ok := r.s.st.obligations[ob.ID()]; !ok {
		return notFound("rental obligation")
	}
	r.s.st.obligations[ob.ID()] = fromObligation(ob)
	return nil
}

type depositRepo struct{ s *Store }

func (r depositRepo) Create(_ context.Context, _ sqlc.DBTX, d *deposit.Deposit) (bool, error) {
	if row, ok := r.s.ConcurrentDeposits[d.OwnerID()]; ok {
		delete(r.s.ConcurrentDeposits, d.OwnerID())
		r.s.st.deposits[d.OwnerID()] = row
	}
	if _, ok := r.s.st.deposits[d.OwnerID()]; ok {
		return false, nil
	}
	r.s.st.deposits[d.OwnerID()] = fromDeposit(d)
	return true, nil
}

func (r depositRepo) LockByOwner(_ context.Context, _ sqlc.DBTX, ownerID uuid.UUID) (*deposit.Deposit, error) {
	if r.s.OnLockDeposit != nil {
		if err := r.s.OnLockDeposit(ownerID); err != nil {
			return nil, err
		}
	}
	row, ok := r.s.st.deposits[ownerID]
	if !ok {
		return nil, notFound("deposit")
	}
	return toDeposit(row)
}

func (r depositRepo) Save(_ context.Context, _ sqlc.DBTX, d *deposit.Deposit) error {
	row, ok := r.s.st.deposits[d.OwnerID()]
	if !ok || row.ID != d.ID() {
		return errs.Mark(errs.Newf("deposit update affected 0 rows"), errs.ErrPersistenceIntegrity)
	}
	r.s.st.deposits[d.OwnerID()] = fromDeposit(d)
	return nil
}

type offsetRepo struct{ s *Store }

func (r offsetRepo) Create(_ context.Context, _ sqlc.DBTX, off *deposit.Offset) error {
	r.s.st.offsets = append(r.s.st.offsets, OffsetRow{
		ID:           off.ID(),
		DepositID:    off.DepositID(),
		ObligationID: off.ObligationID(),
		Amount:       off.Amount().Amount(),
		CreatedAt:    off.CreatedAt(),
	})
	return nil
}

type itemRepo struct{ s *Store }

func (r itemRepo) MarkPendingRetrieval(_ context.Context, _ sqlc.DBTX, bookCaseIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, it := range r.s.st.items {
		if it.State == ItemAvailable && slices.Contains(bookCaseIDs, it.BookCaseID) {
			it.State = ItemPendingRetrieval
			r.s.st.items[id] = it
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	return ids, nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.st.jobs = append(r.s.st.jobs, JobRow{
		Kind:    kind,
		Topic:   topic,
		Payload: slices.Clone(payload),
		RunAt:   runAt,
		Status:  NotificationQueued,
	})
	return nil
}

// ================================================================================
// Row conversion
// ================================================================================

func sortOccupancies(rows []OccupancyRow) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].OccupiedAt.Equal(rows[j].OccupiedAt) {
			return rows[i].OccupiedAt.Before(rows[j].OccupiedAt)
		}
		return rows[i].ID.String() < rows[j].ID.String()
	})
}

func toOccupancy(row OccupancyRow) *occupancy.Occupancy {
	return occupancy.ReconstructOccupancy(row.ID, row.BookCaseID, row.OwnerID, row.OccupiedAt, row.UnOccupiedAt, row.SuspendedAt, row.Expiration)
}

func toObligation(row ObligationRow) *settlement.Obligation {
	return settlement.ReconstructObligation(
		row.ID, row.OccupancyID, row.OwnerID, row.Month,
		money.MustNew(row.Amount), money.MustNew(row.Deducted), money.MustNew(row.Remaining),
		row.Status, row.PaidAt,
	)
}

func fromObligation(ob *settlement.Obligation) ObligationRow {
	return ObligationRow{
		ID:          ob.ID(),
		OccupancyID: ob.OccupancyID(),
		OwnerID:     ob.OwnerID(),
		Month:       ob.TargetMonth(),
		Amount:      ob.Amount().Amount(),
		Deducted:    ob.Deducted().Amount(),
		Remaining:   ob.Remaining().Amount(),
		Status:      ob.Status(),
		PaidAt:      ob.PaidAt(),
	}
}

func fromDeposit(d *deposit.Deposit) DepositRow {
	return DepositRow{
		ID:        d.ID(),
		OwnerID:   d.OwnerID(),
		Amount:    d.Amount().Amount(),
		Remaining: d.Remaining().Amount(),
		Status:    d.Status(),
	}
}

func toDeposit(row DepositRow) (*deposit.Deposit, error) {
	return deposit.ReconstructDeposit(row.ID, row.OwnerID, money.MustNew(row.Amount), money.MustNew(row.Remaining), row.Status)
}
