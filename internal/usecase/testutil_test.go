package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/metrics"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/models"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/repository"
	"github.com/swiftment/payment-service/internal/infrastructure/subaccount"
	merchantdto "github.com/swiftment/payment-service/internal/usecase/dto/merchant"
	platformdto "github.com/swiftment/payment-service/internal/usecase/dto/platform"
	subscriptiondto "github.com/swiftment/payment-service/internal/usecase/dto/subscription"
	userdto "github.com/swiftment/payment-service/internal/usecase/dto/user"
)

// Prometheus collectors register globally, so the whole package shares one
// metrics instance.
var testMetrics = metrics.NewPaymentMetrics()

const (
	testAssetID    = "usdc"
	testFeeAccount = "platform-fee-account"
	testAuthority  = "platform-authority"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 { return c.now }

type fakeLedger struct {
	transfers []*domain.TransferRequest
	// failOn is the 1-based call number that fails; 0 never fails.
	failOn int
	err    error
}

func (l *fakeLedger) Transfer(_ context.Context, req *domain.TransferRequest) error {
	if l.failOn > 0 && len(l.transfers)+1 == l.failOn {
		return l.err
	}
	copied := *req
	l.transfers = append(l.transfers, &copied)
	return nil
}

type publishedMessage struct {
	Topic string
	Msg   domain.Message
}

type fakePublisher struct {
	published []publishedMessage
}

func (p *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	for _, msg := range msgs {
		p.published = append(p.published, publishedMessage{Topic: topic, Msg: msg})
	}
	return nil
}

type fixture struct {
	db *gorm.DB

	configRepo       *repository.DefaultConfigRepository
	merchantRepo     *repository.DefaultMerchantRepository
	userRepo         *repository.DefaultUserRepository
	subscriptionRepo *repository.DefaultSubscriptionRepository
	purchaseRepo     *repository.DefaultPurchaseRepository
	withdrawalRepo   *repository.DefaultWithdrawalRepository

	clock     *fakeClock
	ledger    *fakeLedger
	publisher *fakePublisher
	deriver   *subaccount.Deriver

	platformUC     *DefaultPlatformUsecase
	merchantUC     *DefaultMerchantUsecase
	userUC         *DefaultUserUsecase
	subscriptionUC *DefaultSubscriptionUsecase
	paymentUC      *DefaultPaymentUsecase
	withdrawalUC   *DefaultWithdrawalUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)

	f := &fixture{
		db:               db,
		configRepo:       repository.NewDefaultConfigRepository(db),
		merchantRepo:     repository.NewDefaultMerchantRepository(db),
		userRepo:         repository.NewDefaultUserRepository(db),
		subscriptionRepo: repository.NewDefaultSubscriptionRepository(db),
		purchaseRepo:     repository.NewDefaultPurchaseRepository(db),
		withdrawalRepo:   repository.NewDefaultWithdrawalRepository(db),
		clock:            &fakeClock{now: 1_700_000_000},
		ledger:           &fakeLedger{},
		publisher:        &fakePublisher{},
		deriver:          subaccount.NewDeriver(),
	}

	txManager := repository.NewTxManager(db)

	f.platformUC = NewDefaultPlatformUsecase(f.configRepo)
	f.merchantUC = NewDefaultMerchantUsecase(f.merchantRepo, f.configRepo, f.deriver, txManager)
	f.userUC = NewDefaultUserUsecase(f.userRepo)
	f.subscriptionUC = NewDefaultSubscriptionUsecase(f.subscriptionRepo, f.userRepo, f.merchantRepo, f.clock)
	f.paymentUC = NewDefaultPaymentUsecase(
		f.configRepo, f.userRepo, f.merchantRepo, f.subscriptionRepo, f.purchaseRepo,
		f.ledger, f.deriver, f.clock, txManager, f.publisher, testMetrics,
	)
	f.withdrawalUC = NewDefaultWithdrawalUsecase(
		f.configRepo, f.merchantRepo, f.withdrawalRepo,
		f.ledger, f.deriver, f.clock, txManager, f.publisher, testMetrics,
	)

	return f
}

func (f *fixture) initPlatform(t *testing.T, purchaseFeeBps, withdrawFeeBps uint16) *domain.PlatformConfig {
	t.Helper()
	cfg, err := f.platformUC.Initialize(context.Background(), &platformdto.InitializeInput{
		Authority:      testAuthority,
		AssetID:        testAssetID,
		PurchaseFeeBps: purchaseFeeBps,
		WithdrawFeeBps: withdrawFeeBps,
		FeeAccount:     testFeeAccount,
	})
	require.NoError(t, err)
	return cfg
}

func (f *fixture) registerMerchant(t *testing.T, authority string) *merchantdto.RegisterMerchantOutput {
	t.Helper()
	out, err := f.merchantUC.RegisterMerchant(context.Background(), &merchantdto.RegisterMerchantInput{
		MerchantAuthority: authority,
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) registerUser(t *testing.T, owner string) *domain.User {
	t.Helper()
	user, err := f.userUC.RegisterUser(context.Background(), &userdto.RegisterUserInput{Owner: owner})
	require.NoError(t, err)
	return user
}

func (f *fixture) optIn(t *testing.T, owner, authority string, dailyLimit uint64) *domain.Subscription {
	t.Helper()
	sub, err := f.subscriptionUC.OptIn(context.Background(), &subscriptiondto.OptInInput{
		UserOwner:         owner,
		MerchantAuthority: authority,
		DailyLimit:        dailyLimit,
	})
	require.NoError(t, err)
	return sub
}

// setSpending overwrites the subscription counters directly, bypassing the
// engines, to arrange mid-day and stale-day scenarios.
func (f *fixture) setSpending(t *testing.T, sub *domain.Subscription, spent uint64, lastReset int64) {
	t.Helper()
	sub.SpentToday = spent
	sub.LastReset = lastReset
	require.NoError(t, f.subscriptionRepo.UpdateSpending(context.Background(), sub))
}

func (f *fixture) getSubscription(t *testing.T, userID, merchantID string) *domain.Subscription {
	t.Helper()
	sub, err := f.subscriptionRepo.GetSubscription(context.Background(), userID, merchantID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}
