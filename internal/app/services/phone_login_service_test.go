package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
)

// fakeAccountStore is an in-memory AccountStore keyed by ID, email and
// (phone, role).
type fakeAccountStore struct {
	nextID   int64
	accounts map[int64]*models.Account
	creates  int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{nextID: 1, accounts: make(map[int64]*models.Account)}
}

func (f *fakeAccountStore) Create(_ context.Context, account *models.Account) error {
	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	account.ID = f.nextID
	f.nextID++
	f.accounts[account.ID] = account
	f.creates++
	return nil
}

func (f *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountStore) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountStore) GetByPhoneAndRole(_ context.Context, phone string, role models.RoleType) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.Role == role && account.Phone != nil && *account.Phone == phone {
			return account, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

// fakeStudentStore holds students and resolves the two phone searches
// against ACTIVE rows only.
type fakeStudentStore struct {
	students map[int64]*models.Student
	binds    int
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	f := &fakeStudentStore{students: make(map[int64]*models.Student)}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) FindActiveByPhone(_ context.Context, phone string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.Status == models.StudentActive && s.Phone != nil && *s.Phone == phone {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) FindActiveByParentPhone(_ context.Context, phone string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.Status == models.StudentActive && s.ParentPhone != nil && *s.ParentPhone == phone {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) BindAccount(_ context.Context, studentID, accountID int64, phone string) error {
	student, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.AccountID = &accountID
	student.Phone = &phone
	f.binds++
	return nil
}

// fakeParentLinkStore records links and de-duplicates on the
// (parent, student) pair like the unique constraint does.
type fakeParentLinkStore struct {
	links    map[[2]int64]string
	students *fakeStudentStore
	accounts *fakeAccountStore
}

func newFakeParentLinkStore(students *fakeStudentStore, accounts *fakeAccountStore) *fakeParentLinkStore {
	return &fakeParentLinkStore{
		links:    make(map[[2]int64]string),
		students: students,
		accounts: accounts,
	}
}

func (f *fakeParentLinkStore) Link(_ context.Context, parentID, studentID int64, relation string) error {
	f.links[[2]int64{parentID, studentID}] = relation
	return nil
}

func (f *fakeParentLinkStore) FindActiveStudentsLinkedByPhone(ctx context.Context, phone string) ([]*models.Student, error) {
	var out []*models.Student
	for pair := range f.links {
		parent, err := f.accounts.GetByID(ctx, pair[0])
		if err != nil {
			continue
		}
		if parent.Phone == nil || *parent.Phone != phone {
			continue
		}
		if student, ok := f.students.students[pair[1]]; ok && student.Status == models.StudentActive {
			out = append(out, student)
		}
	}
	return out, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func strPtr(s string) *string { return &s }

func newPhoneLoginFixture(students ...*models.Student) (*PhoneLoginService, *fakeAccountStore, *fakeStudentStore, *fakeParentLinkStore) {
	accounts := newFakeAccountStore()
	studentStore := newFakeStudentStore(students...)
	links := newFakeParentLinkStore(studentStore, accounts)
	svc := NewPhoneLoginService(accounts, studentStore, links, testJWTService())
	return svc, accounts, studentStore, links
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "01012345678", NormalizePhone("010-1234-5678"))
	assert.Equal(t, "01012345678", NormalizePhone("010 1234 5678"))
	assert.Equal(t, "01012345678", NormalizePhone("01012345678"))
	assert.Equal(t, "", NormalizePhone(" - "))
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "김*수", MaskName("김철수"))
	assert.Equal(t, "이*", MaskName("이박"))
	assert.Equal(t, "이", MaskName("이"))
	assert.Equal(t, "남**혁", MaskName("남궁민혁"))
}

func TestLookupUnknownPhone(t *testing.T) {
	svc, accounts, studentStore, _ := newPhoneLoginFixture(&models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		Status:        models.StudentActive,
	})

	_, err := svc.Lookup(context.Background(), "010-9999-0000")
	require.ErrorIs(t, err, apperrors.ErrPhoneNotRegistered)

	// A failed lookup provisions nothing.
	assert.Zero(t, accounts.creates)
	assert.Zero(t, studentStore.binds)
}

func TestLookupMasksNamesAndSetsRole(t *testing.T) {
	svc, _, _, _ := newPhoneLoginFixture(
		&models.Student{
			ID:            1,
			Name:          "김철수",
			StudentNumber: "2026001",
			Phone:         strPtr("01011112222"),
			Status:        models.StudentActive,
		},
		&models.Student{
			ID:            2,
			Name:          "김영희",
			StudentNumber: "2026002",
			ParentPhone:   strPtr("01011112222"),
			Status:        models.StudentActive,
		},
	)

	resp, err := svc.Lookup(context.Background(), "010-1111-2222")
	require.NoError(t, err)
	assert.Equal(t, dto.PhoneLoginStepSelect, resp.Step)
	require.Len(t, resp.Students, 2)

	byID := make(map[int64]dto.PhoneCandidate)
	for _, c := range resp.Students {
		byID[c.ID] = c
	}
	assert.Equal(t, "김*수", byID[1].Name)
	assert.Equal(t, string(models.RoleStudent), byID[1].LoginAs)
	assert.Equal(t, "김*희", byID[2].Name)
	assert.Equal(t, string(models.RoleParent), byID[2].LoginAs)
}

func TestLookupStudentRoleWinsOnOverlap(t *testing.T) {
	// Same number stored as the student's own phone and as the parent
	// phone: the student match takes precedence and no duplicate
	// candidate appears.
	svc, _, _, _ := newPhoneLoginFixture(&models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		ParentPhone:   strPtr("01011112222"),
		Status:        models.StudentActive,
	})

	resp, err := svc.Lookup(context.Background(), "01011112222")
	require.NoError(t, err)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, string(models.RoleStudent), resp.Students[0].LoginAs)
}

func TestLookupIgnoresInactiveStudents(t *testing.T) {
	svc, _, _, _ := newPhoneLoginFixture(&models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		Status:        models.StudentWithdrawn,
	})

	_, err := svc.Lookup(context.Background(), "01011112222")
	assert.ErrorIs(t, err, apperrors.ErrPhoneNotRegistered)
}

func TestConfirmNameMismatch(t *testing.T) {
	svc, accounts, _, _ := newPhoneLoginFixture(&models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		Status:        models.StudentActive,
	})

	_, err := svc.Confirm(context.Background(), &dto.PhoneLoginRequest{
		Phone:       "01011112222",
		StudentID:   1,
		StudentName: "김절수",
		LoginType:   string(models.RoleStudent),
	})
	require.ErrorIs(t, err, apperrors.ErrNameMismatch)
	assert.Zero(t, accounts.creates)
}

func TestConfirmNameMatchIgnoresWhitespace(t *testing.T) {
	svc, _, _, _ := newPhoneLoginFixture(&models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		Status:        models.StudentActive,
	})

	resp, err := svc.Confirm(context.Background(), &dto.PhoneLoginRequest{
		Phone:       "010-1111-2222",
		StudentID:   1,
		StudentName: "김 철수",
		LoginType:   string(models.RoleStudent),
	})
	require.NoError(t, err)
	assert.Equal(t, dto.PhoneLoginStepSuccess, resp.Step)
	assert.NotEmpty(t, resp.Token)
}

func TestConfirmProvisionsStudentAccountOnce(t *testing.T) {
	student := &models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		Status:        models.StudentActive,
	}
	svc, accounts, studentStore, _ := newPhoneLoginFixture(student)

	req := &dto.PhoneLoginRequest{
		Phone:       "01011112222",
		StudentID:   1,
		StudentName: "김철수",
		LoginType:   string(models.RoleStudent),
	}

	first, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, student.AccountID)
	assert.Equal(t, 1, accounts.creates)
	assert.Equal(t, 1, studentStore.binds)
	assert.Equal(t, string(models.RoleStudent), string(first.User.Role))
	assert.True(t, strings.HasPrefix(first.User.Email, "student_2026001@"))

	// Second login reuses the bound account.
	second, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, 1, accounts.creates)
	assert.Equal(t, 1, studentStore.binds)
}

func TestConfirmParentProvisioningIsIdempotent(t *testing.T) {
	student := &models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		ParentPhone:   strPtr("01098765432"),
		Status:        models.StudentActive,
	}
	svc, accounts, _, links := newPhoneLoginFixture(student)

	req := &dto.PhoneLoginRequest{
		Phone:       "010-9876-5432",
		StudentID:   1,
		StudentName: "김철수",
		LoginType:   string(models.RoleParent),
	}

	first, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleParent), string(first.User.Role))
	assert.Equal(t, 1, accounts.creates)
	assert.Len(t, links.links, 1)
	assert.Equal(t, ParentRelation, links.links[[2]int64{first.User.ID, 1}])

	// Repeating step two does not create a second account or link.
	second, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, 1, accounts.creates)
	assert.Len(t, links.links, 1)
}

func TestConfirmParentSecondChildGainsSecondLink(t *testing.T) {
	parentPhone := "01098765432"
	first := &models.Student{
		ID: 1, Name: "김철수", StudentNumber: "2026001",
		ParentPhone: strPtr(parentPhone), Status: models.StudentActive,
	}
	second := &models.Student{
		ID: 2, Name: "김영희", StudentNumber: "2026002",
		ParentPhone: strPtr(parentPhone), Status: models.StudentActive,
	}
	svc, accounts, _, links := newPhoneLoginFixture(first, second)

	respA, err := svc.Confirm(context.Background(), &dto.PhoneLoginRequest{
		Phone: parentPhone, StudentID: 1, StudentName: "김철수",
		LoginType: string(models.RoleParent),
	})
	require.NoError(t, err)

	respB, err := svc.Confirm(context.Background(), &dto.PhoneLoginRequest{
		Phone: parentPhone, StudentID: 2, StudentName: "김영희",
		LoginType: string(models.RoleParent),
	})
	require.NoError(t, err)

	assert.Equal(t, respA.User.ID, respB.User.ID)
	assert.Equal(t, 1, accounts.creates)
	assert.Len(t, links.links, 2)
}

func TestConfirmProvisioningRaceFallsBackToExistingAccount(t *testing.T) {
	student := &models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		ParentPhone:   strPtr("01098765432"),
		Status:        models.StudentActive,
	}
	svc, accounts, _, _ := newPhoneLoginFixture(student)

	// Simulate a concurrent winner: the account row exists but without a
	// phone, so GetByPhoneAndRole misses and Create hits the unique
	// email constraint.
	existing := &models.Account{
		Email:    "parent_01098765432@suhaktamgu.local",
		Password: "x",
		Name:     "김철수 학부모",
		Role:     models.RoleParent,
	}
	require.NoError(t, accounts.Create(context.Background(), existing))
	accounts.creates = 0

	resp, err := svc.Confirm(context.Background(), &dto.PhoneLoginRequest{
		Phone:       "01098765432",
		StudentID:   1,
		StudentName: "김철수",
		LoginType:   string(models.RoleParent),
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)
	assert.Zero(t, accounts.creates)
}

func TestLoginDispatchesBetweenSteps(t *testing.T) {
	svc, _, _, _ := newPhoneLoginFixture(&models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		Status:        models.StudentActive,
	})

	stepOne, err := svc.Login(context.Background(), &dto.PhoneLoginRequest{Phone: "01011112222"})
	require.NoError(t, err)
	_, ok := stepOne.(*dto.PhoneLoginSelectResponse)
	assert.True(t, ok)

	stepTwo, err := svc.Login(context.Background(), &dto.PhoneLoginRequest{
		Phone:       "01011112222",
		StudentID:   1,
		StudentName: "김철수",
		LoginType:   string(models.RoleStudent),
	})
	require.NoError(t, err)
	_, ok = stepTwo.(*dto.PhoneLoginSuccessResponse)
	assert.True(t, ok)
}

func TestLoginWithStudentButNoNameIsRejected(t *testing.T) {
	svc, accounts, studentStore, _ := newPhoneLoginFixture(&models.Student{
		ID:            1,
		Name:          "김철수",
		StudentNumber: "2026001",
		Phone:         strPtr("01011112222"),
		Status:        models.StudentActive,
	})

	// A chosen student with no typed name is a step-two input error; it
	// must not fall back to the candidate list.
	for _, name := range []string{"", "   "} {
		resp, err := svc.Login(context.Background(), &dto.PhoneLoginRequest{
			Phone:       "01011112222",
			StudentID:   1,
			StudentName: name,
			LoginType:   string(models.RoleStudent),
		})
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, resp)
	}
	assert.Zero(t, accounts.creates)
	assert.Zero(t, studentStore.binds)
}
