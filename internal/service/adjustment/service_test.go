package adjustment

import (
	"context"
	"testing"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/adjustment"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/daylock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeTx struct{}

func (fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }
func (fakeTx) Commit(ctx context.Context) error { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }
func (fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }
func (fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (fakeTx) Conn() *pgx.Conn { return nil }

type fakeDB struct{}

func (fakeDB) BeginTx(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type fakeAdjustmentRepo struct {
	requests map[string]adjustment.AdjustmentRequest
}

func newFakeAdjustmentRepo() *fakeAdjustmentRepo {
	return &fakeAdjustmentRepo{requests: make(map[string]adjustment.AdjustmentRequest)}
}

func (r *fakeAdjustmentRepo) Create(ctx context.Context, req adjustment.AdjustmentRequest) (adjustment.AdjustmentRequest, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	req.CreatedAt = time.Now()
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeAdjustmentRepo) GetByID(ctx context.Context, id string) (adjustment.AdjustmentRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return adjustment.AdjustmentRequest{}, adjustment.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeAdjustmentRepo) UpdateStatus(ctx context.Context, id string, status adjustment.Status, rejectionReason *string) error {
	req, ok := r.requests[id]
	if !ok {
		return adjustment.ErrRequestNotFound
	}
	if req.Status != adjustment.StatusPending {
		return adjustment.ErrAlreadyProcessed
	}
	now := time.Now()
	req.Status = status
	req.RejectionReason = rejectionReason
	req.DecidedAt = &now
	r.requests[id] = req
	return nil
}

func (r *fakeAdjustmentRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]adjustment.AdjustmentRequest, error) {
	var result []adjustment.AdjustmentRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *fakeAdjustmentRepo) ListPending(ctx context.Context) ([]adjustment.AdjustmentRequest, error) {
	var result []adjustment.AdjustmentRequest
	for _, req := range r.requests {
		if req.Status == adjustment.StatusPending {
			result = append(result, req)
		}
	}
	return result, nil
}

type fakePunchRepo struct {
	punches map[string]timeclock.PunchEvent
}

func newFakePunchRepo() *fakePunchRepo {
	return &fakePunchRepo{punches: make(map[string]timeclock.PunchEvent)}
}

func (r *fakePunchRepo) Create(ctx context.Context, punch timeclock.PunchEvent) (timeclock.PunchEvent, error) {
	if punch.ID == "" {
		punch.ID = uuid.New().String()
	}
	r.punches[punch.ID] = punch
	return punch, nil
}

func (r *fakePunchRepo) GetByID(ctx context.Context, id string) (timeclock.PunchEvent, error) {
	punch, ok := r.punches[id]
	if !ok {
		return timeclock.PunchEvent{}, timeclock.ErrPunchNotFound
	}
	return punch, nil
}

func (r *fakePunchRepo) Update(ctx context.Context, punch timeclock.PunchEvent) error {
	existing, ok := r.punches[punch.ID]
	if !ok {
		return timeclock.ErrPunchNotFound
	}
	existing.At = punch.At
	existing.Label = punch.Label
	existing.Source = punch.Source
	r.punches[punch.ID] = existing
	return nil
}

func (r *fakePunchRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.punches[id]; !ok {
		return timeclock.ErrPunchNotFound
	}
	delete(r.punches, id)
	return nil
}

func (r *fakePunchRepo) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]timeclock.PunchEvent, error) {
	return nil, nil
}

func (r *fakePunchRepo) GetLastByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeclock.PunchEvent, error) {
	return nil, nil
}

func (r *fakePunchRepo) GetLastByEmployee(ctx context.Context, employeeID string) (*timeclock.PunchEvent, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

type fakeReconciler struct {
	calls []time.Time
}

func (f *fakeReconciler) Reconcile(ctx context.Context, employeeID string, date time.Time) (timeclock.DailySummary, error) {
	f.calls = append(f.calls, date)
	return timeclock.DailySummary{EmployeeID: employeeID, Date: date}, nil
}

// ===== HELPERS =====

type testEnv struct {
	svc      *AdjustmentServiceImpl
	adjs     *fakeAdjustmentRepo
	punches  *fakePunchRepo
	emps     *fakeEmployeeRepo
	rec      *fakeReconciler
	employee employee.Employee
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	adjs := newFakeAdjustmentRepo()
	punches := newFakePunchRepo()
	emps := newFakeEmployeeRepo()
	rec := &fakeReconciler{}
	svc := NewAdjustmentService(fakeDB{}, adjs, punches, emps, rec, daylock.New())

	emp, _ := emps.Create(context.Background(), employee.Employee{Name: "Ana"})
	return &testEnv{svc: svc, adjs: adjs, punches: punches, emps: emps, rec: rec, employee: emp}
}

func (e *testEnv) addPunch(t *testing.T, date time.Time, hour, minute int, label timeclock.Label) timeclock.PunchEvent {
	t.Helper()
	punch, err := e.punches.Create(context.Background(), timeclock.PunchEvent{
		EmployeeID: e.employee.ID,
		Date:       date,
		At:         time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC),
		Label:      label,
		Source:     timeclock.SourceGeo,
	})
	require.NoError(t, err)
	return punch
}

var testDate = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

// ===== TESTS =====

func TestAdjustmentService_SubmitAndApprove_Edit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	punch := env.addPunch(t, testDate, 8, 12, timeclock.LabelEntry)

	submitted, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "edit",
		PunchID:       &punch.ID,
		ProposedTime:  "08:00",
		ProposedLabel: "entry",
		Justification: "forgot to punch on arrival",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", submitted.Status)
	require.NotNil(t, submitted.OriginalTime)
	assert.Equal(t, "08:12", *submitted.OriginalTime)

	decided, err := env.svc.Approve(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)

	updated, err := env.punches.GetByID(ctx, punch.ID)
	require.NoError(t, err)
	assert.Equal(t, "08:00", updated.TimeString())
	assert.Equal(t, timeclock.SourceAdjustment, updated.Source)
	assert.Len(t, env.rec.calls, 1)
}

func TestAdjustmentService_Approve_Include(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	submitted, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "include",
		ProposedTime:  "17:00",
		ProposedLabel: "exit",
		Justification: "badge reader was down",
	})
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	require.NoError(t, err)

	assert.Len(t, env.punches.punches, 1)
	for _, punch := range env.punches.punches {
		assert.Equal(t, timeclock.LabelExit, punch.Label)
		assert.Equal(t, timeclock.SourceAdjustment, punch.Source)
		assert.Equal(t, "17:00", punch.TimeString())
	}
}

func TestAdjustmentService_Approve_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	punch := env.addPunch(t, testDate, 12, 0, timeclock.LabelLunchOut)

	submitted, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "delete",
		PunchID:       &punch.ID,
		Justification: "double punch",
	})
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	require.NoError(t, err)
	assert.Empty(t, env.punches.punches)
}

func TestAdjustmentService_Approve_VanishedPunchStaysPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	punch := env.addPunch(t, testDate, 8, 0, timeclock.LabelEntry)

	submitted, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "delete",
		PunchID:       &punch.ID,
		Justification: "double punch",
	})
	require.NoError(t, err)

	// The punch disappears before the decision.
	require.NoError(t, env.punches.Delete(ctx, punch.ID))

	_, err = env.svc.Approve(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	assert.ErrorIs(t, err, adjustment.ErrPunchVanished)

	stored, err := env.adjs.GetByID(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, adjustment.StatusPending, stored.Status)
	assert.Empty(t, env.rec.calls)
}

func TestAdjustmentService_Approve_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	punch := env.addPunch(t, testDate, 8, 0, timeclock.LabelEntry)

	submitted, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "delete",
		PunchID:       &punch.ID,
		Justification: "double punch",
	})
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	assert.ErrorIs(t, err, adjustment.ErrAlreadyProcessed)
}

func TestAdjustmentService_Reject_RequiresReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	punch := env.addPunch(t, testDate, 8, 0, timeclock.LabelEntry)

	submitted, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "delete",
		PunchID:       &punch.ID,
		Justification: "double punch",
	})
	require.NoError(t, err)

	_, err = env.svc.Reject(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	assert.ErrorIs(t, err, adjustment.ErrReasonRequired)

	decided, err := env.svc.Reject(ctx, adjustment.DecideRequest{RequestID: submitted.ID, Reason: "no evidence"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", decided.Status)
	require.NotNil(t, decided.RejectionReason)
	assert.Equal(t, "no evidence", *decided.RejectionReason)

	// The ledger was never touched.
	assert.Len(t, env.punches.punches, 1)
}

func TestAdjustmentService_Submit_ValidationRules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	// edit without punch_id
	_, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "edit",
		ProposedTime:  "08:00",
		ProposedLabel: "entry",
		Justification: "x",
	})
	assert.Error(t, err)

	// include with punch_id
	id := uuid.New().String()
	_, err = env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "include",
		PunchID:       &id,
		ProposedTime:  "08:00",
		ProposedLabel: "entry",
		Justification: "x",
	})
	assert.Error(t, err)

	// missing justification
	_, err = env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "include",
		ProposedTime:  "08:00",
		ProposedLabel: "entry",
	})
	assert.Error(t, err)
}

func TestAdjustmentService_Submit_PunchOnOtherDayRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	punch := env.addPunch(t, testDate, 17, 30, timeclock.LabelExit)

	// The referenced punch is dated 2026-08-24, not the request's day.
	_, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-25",
		Kind:          "edit",
		PunchID:       &punch.ID,
		ProposedTime:  "18:00",
		ProposedLabel: "exit",
		Justification: "left later than recorded",
	})
	assert.ErrorIs(t, err, timeclock.ErrPunchNotFound)

	stored, err := env.punches.GetByID(ctx, punch.ID)
	require.NoError(t, err)
	assert.Equal(t, "17:30", stored.TimeString())
}

func TestAdjustmentService_Approve_PunchMovedOffDayStaysPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	punch := env.addPunch(t, testDate, 17, 30, timeclock.LabelExit)

	submitted, err := env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "edit",
		PunchID:       &punch.ID,
		ProposedTime:  "18:00",
		ProposedLabel: "exit",
		Justification: "left later than recorded",
	})
	require.NoError(t, err)

	// The punch lands on another day before the decision.
	moved := env.punches.punches[punch.ID]
	moved.Date = testDate.AddDate(0, 0, 1)
	env.punches.punches[punch.ID] = moved

	_, err = env.svc.Approve(ctx, adjustment.DecideRequest{RequestID: submitted.ID})
	assert.ErrorIs(t, err, adjustment.ErrPunchVanished)

	stored, err := env.adjs.GetByID(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, adjustment.StatusPending, stored.Status)
	assert.Equal(t, "17:30", env.punches.punches[punch.ID].TimeString())
	assert.Empty(t, env.rec.calls)
}

func TestAdjustmentService_Submit_ForeignPunchRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	other, _ := env.emps.Create(ctx, employee.Employee{Name: "Beto"})
	punch, err := env.punches.Create(ctx, timeclock.PunchEvent{
		EmployeeID: other.ID,
		Date:       testDate,
		At:         time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC),
		Label:      timeclock.LabelEntry,
	})
	require.NoError(t, err)

	_, err = env.svc.Submit(ctx, adjustment.SubmitRequest{
		EmployeeID:    env.employee.ID,
		Date:          "2026-08-24",
		Kind:          "delete",
		PunchID:       &punch.ID,
		Justification: "not mine",
	})
	assert.ErrorIs(t, err, timeclock.ErrPunchNotFound)
}
