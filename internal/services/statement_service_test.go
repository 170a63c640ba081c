package services

import (
	"log/slog"
	"testing"
	"time"

	"chequemate/internal/models"
	"chequemate/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatementServiceTestSuite is the test suite for StatementService
type StatementServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAccountRepo    *repository_mocks.MockAccountRepositoryInterface
	mockInstrumentRepo *repository_mocks.MockInstrumentRepositoryInterface
	service            StatementServiceInterface

	userID    uuid.UUID
	accountID uuid.UUID
	account   *models.Account
}

// SetupTest initializes the test suite before each test
func (s *StatementServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.mockInstrumentRepo = repository_mocks.NewMockInstrumentRepositoryInterface(s.ctrl)

	s.userID = uuid.New()
	s.accountID = uuid.New()
	s.account = &models.Account{
		ID:             s.accountID,
		UserID:         s.userID,
		Name:           "Business Checking",
		Currency:       "NPR",
		OpeningBalance: decimal.NewFromInt(1000),
	}

	s.service = NewStatementService(s.mockAccountRepo, s.mockInstrumentRepo, slog.Default())
}

// TearDownTest cleans up after each test
func (s *StatementServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestStatementServiceSuite runs the test suite
func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) instrument(kind, status string, amount int64, dueDate time.Time) models.Instrument {
	return models.Instrument{
		ID:        uuid.New(),
		AccountID: s.accountID,
		Kind:      kind,
		Status:    status,
		Amount:    decimal.NewFromInt(amount),
		DueDate:   dueDate,
		Reference: "REF-" + uuid.New().String()[:8],
	}
}

func (s *StatementServiceTestSuite) TestGenerateStatement_Monthly() {
	instruments := []models.Instrument{
		s.instrument(models.InstrumentKindDeposit, models.InstrumentStatusCleared, 500, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		s.instrument(models.InstrumentKindCheque, models.InstrumentStatusPending, 200, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)),
		s.instrument(models.InstrumentKindWithdrawal, models.InstrumentStatusPending, 100, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		// Outside the period: influences opening balance, never the lines
		s.instrument(models.InstrumentKindDeposit, models.InstrumentStatusCleared, 50, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)),
	}

	s.mockAccountRepo.EXPECT().GetByID(s.accountID).Return(s.account, nil)
	s.mockInstrumentRepo.EXPECT().GetAllByAccountID(s.accountID).Return(instruments, nil)

	statement, err := s.service.GenerateStatement(s.userID, s.accountID, models.StatementPeriodMonthly, 2026, 3)

	s.Require().NoError(err)
	s.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), statement.StartDate)
	s.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), statement.EndDate)
	s.Len(statement.Lines, 3)

	// February's deposit is already in the opening projected balance
	s.True(statement.OpeningProjected.Equal(decimal.NewFromInt(1050)))
	s.True(statement.ClosingProjected.Equal(decimal.NewFromInt(1250)))

	s.True(statement.Summary.TotalDeposits.Equal(decimal.NewFromInt(500)))
	s.True(statement.Summary.TotalCheques.Equal(decimal.NewFromInt(200)))
	s.True(statement.Summary.TotalWithdrawals.Equal(decimal.NewFromInt(100)))
	s.True(statement.Summary.NetMovement.Equal(decimal.NewFromInt(200)))
	s.Equal(2, statement.Summary.PendingCount)
	s.Equal(1, statement.Summary.SettledCount)
}

func (s *StatementServiceTestSuite) TestGenerateStatement_Quarterly() {
	s.mockAccountRepo.EXPECT().GetByID(s.accountID).Return(s.account, nil)
	s.mockInstrumentRepo.EXPECT().GetAllByAccountID(s.accountID).Return(nil, nil)

	statement, err := s.service.GenerateStatement(s.userID, s.accountID, models.StatementPeriodQuarterly, 2026, 2)

	s.Require().NoError(err)
	s.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), statement.StartDate)
	s.Equal(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), statement.EndDate)
	s.Empty(statement.Lines)
	s.True(statement.ClosingProjected.Equal(decimal.NewFromInt(1000)))
}

func (s *StatementServiceTestSuite) TestGenerateStatement_InvalidPeriodType() {
	_, err := s.service.GenerateStatement(s.userID, s.accountID, "weekly", 2026, 1)

	s.ErrorIs(err, ErrInvalidPeriodType)
}

func (s *StatementServiceTestSuite) TestGenerateStatement_PeriodOutOfRange() {
	_, err := s.service.GenerateStatement(s.userID, s.accountID, models.StatementPeriodMonthly, 2026, 13)
	s.ErrorIs(err, ErrInvalidPeriod)

	_, err = s.service.GenerateStatement(s.userID, s.accountID, models.StatementPeriodQuarterly, 2026, 5)
	s.ErrorIs(err, ErrInvalidPeriod)
}

func (s *StatementServiceTestSuite) TestGenerateStatement_NotOwned() {
	other := *s.account
	other.UserID = uuid.New()

	s.mockAccountRepo.EXPECT().GetByID(s.accountID).Return(&other, nil)

	_, err := s.service.GenerateStatement(s.userID, s.accountID, models.StatementPeriodMonthly, 2026, 3)

	s.ErrorIs(err, ErrAccountNotOwned)
}
