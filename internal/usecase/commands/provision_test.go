//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"membership-backoffice/internal/infra/commerce"
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/tests/common/builder"
	commandsmock "membership-backoffice/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProvisionerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockCommerceGateway
	mockCoupons *commandsmock.MockCouponRepository
	mockOrphans *commandsmock.MockOrphanLogRepository
	clk         *clock.MockClock
	provisioner commands.CouponProvisioner
}

func (s *ProvisionerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockCommerceGateway(s.mockCtrl)
	s.mockCoupons = commandsmock.NewMockCouponRepository(s.mockCtrl)
	s.mockOrphans = commandsmock.NewMockOrphanLogRepository(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Now().UTC())
	// Zero delays so retries run against a no-op sleeper.
	s.provisioner = commands.NewCouponProvisioner(
		s.mockGateway, s.mockCoupons, s.mockOrphans,
		commands.RetryPolicy{MaxAttempts: 3, BaseDelay: 0, SettleDelay: 0},
		s.clk,
	)
}

// expectNoStaleOrphans covers the orphan-log sweep a confirmed attachment
// performs when no earlier run left entries behind.
func (s *ProvisionerTestSuite) expectNoStaleOrphans(code string) {
	s.mockOrphans.EXPECT().FindByCode(gomock.Any(), code).Return(nil, nil)
}

func (s *ProvisionerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProvisionerSuite(t *testing.T) {
	suite.Run(t, new(ProvisionerTestSuite))
}

func (s *ProvisionerTestSuite) params() commands.ProvisionParams {
	b := builder.NewCouponBuilder()
	return commands.ProvisionParams{
		Code:          b.Code,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		Description:   b.Description,
		ValidFrom:     b.ValidFrom,
		ValidUntil:    b.ValidUntil,
		UsageLimit:    b.UsageLimit,
	}
}

func (s *ProvisionerTestSuite) TestFreshProvisioning() {
	params := s.params()
	s.expectNoStaleOrphans(params.Code)
	rule := &commerce.Rule{ID: 9001, Title: params.Code}
	created := &commerce.DiscountCode{ID: 7001, RuleID: 9001, Code: params.Code}
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(rule, nil),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(created, nil),
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: params.Code}, nil),
		s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), nil, gomock.Any()).
			Return(snapshot, nil),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.Equal(int64(9001), result.RuleID)
	s.Require().NotNil(result.CodeID)
	s.Equal(int64(7001), *result.CodeID)
	s.False(result.Reused)
	s.False(result.Orphaned)
	s.Equal(snapshot, result.Coupon)
}

func (s *ProvisionerTestSuite) TestCodeNormalizedBeforePlatformCalls() {
	params := s.params()
	params.Code = "  save20  "
	s.expectNoStaleOrphans("SAVE20")
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), "SAVE20").
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec commerce.RuleSpec) (*commerce.Rule, error) {
				s.Equal("SAVE20", spec.Title)
				return &commerce.Rule{ID: 1, Title: spec.Title}, nil
			}),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(1), "SAVE20").
			Return(&commerce.DiscountCode{ID: 2, RuleID: 1, Code: "SAVE20"}, nil),
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), "SAVE20").
			Return(&commerce.CodeLookup{RuleID: 1, CodeID: 2, Code: "SAVE20"}, nil),
		s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), nil, gomock.Any()).
			Return(snapshot, nil),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.Equal("SAVE20", result.Code)
}

func (s *ProvisionerTestSuite) TestExistingCodeIsReused() {
	params := s.params()
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
		Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: params.Code}, nil)
	s.mockCoupons.EXPECT().FindByCode(gomock.Any(), params.Code).
		Return(snapshot, nil)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.True(result.Reused)
	s.Equal(int64(9001), result.RuleID)
	s.Require().NotNil(result.CodeID)
	s.Equal(int64(7001), *result.CodeID)
	s.Equal(snapshot, result.Coupon)
}

func (s *ProvisionerTestSuite) TestReuseRepairsMissingLocalRecord() {
	params := s.params()
	params.CustomerEmail = "member@example.com"
	params.CustomerName = "Taylor Member"
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
		Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: params.Code}, nil)
	s.mockCoupons.EXPECT().FindByCode(gomock.Any(), params.Code).
		Return(nil, errRepo)
	s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, info *commands.CustomerInfo, c commands.NewCoupon) (*commands.CouponSnapshot, error) {
			s.Require().NotNil(info)
			s.Equal("member@example.com", info.Email)
			s.Equal(int64(9001), c.ExternalRuleID)
			s.Equal(int64(7001), c.ExternalCodeID)
			return snapshot, nil
		})

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.True(result.Reused)
	s.Equal(snapshot, result.Coupon)
}

func (s *ProvisionerTestSuite) TestRuleConflictResolvesExistingRule() {
	params := s.params()
	s.expectNoStaleOrphans(params.Code)
	conflict := &commerce.PlatformError{Kind: commerce.KindConflict, Op: "create price rule", Status: 422}
	existing := &commerce.Rule{ID: 4242, Title: params.Code}
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(nil, conflict),
		s.mockGateway.EXPECT().FindRuleByTitle(gomock.Any(), params.Code).
			Return(existing, nil),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(4242), params.Code).
			Return(&commerce.DiscountCode{ID: 7001, RuleID: 4242, Code: params.Code}, nil),
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(&commerce.CodeLookup{RuleID: 4242, CodeID: 7001, Code: params.Code}, nil),
		s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), nil, gomock.Any()).
			Return(snapshot, nil),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.Equal(int64(4242), result.RuleID)
}

func (s *ProvisionerTestSuite) TestRuleCreationFailureAborts() {
	params := s.params()
	permanent := &commerce.PlatformError{Kind: commerce.KindPermanent, Op: "create price rule", Status: 400}

	s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
		Return(nil, commerce.ErrCodeNotFound)
	s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
		Return(nil, permanent)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().ErrorIs(err, commands.ErrProvisioningFailed)
	s.Nil(result)
}

func (s *ProvisionerTestSuite) TestTransientCodeFailuresAreRetried() {
	params := s.params()
	s.expectNoStaleOrphans(params.Code)
	rule := &commerce.Rule{ID: 9001, Title: params.Code}
	transient := &commerce.PlatformError{Kind: commerce.KindTransient, Op: "create discount code", Status: 503}
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(rule, nil),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(nil, transient),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(nil, transient),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(&commerce.DiscountCode{ID: 7001, RuleID: 9001, Code: params.Code}, nil),
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: params.Code}, nil),
		s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), nil, gomock.Any()).
			Return(snapshot, nil),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.False(result.Orphaned)
	s.Require().NotNil(result.CodeID)
	s.Equal(int64(7001), *result.CodeID)
}

func (s *ProvisionerTestSuite) TestCodeConflictValidatedAgainstOwningRule() {
	params := s.params()
	s.expectNoStaleOrphans(params.Code)
	rule := &commerce.Rule{ID: 9001, Title: params.Code}
	codeConflict := &commerce.PlatformError{Kind: commerce.KindConflict, Op: "create discount code", Status: 422}
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(rule, nil),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(nil, codeConflict),
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: params.Code}, nil),
		s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), nil, gomock.Any()).
			Return(snapshot, nil),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.Require().NotNil(result.CodeID)
	s.Equal(int64(7001), *result.CodeID)
}

func (s *ProvisionerTestSuite) TestSuccessfulAttachResolvesStaleOrphans() {
	params := s.params()
	rule := &commerce.Rule{ID: 9001, Title: params.Code}
	snapshot := builder.NewCouponBuilder().BuildSnapshot()

	stale := builder.NewOrphanBuilder().With(func(b *builder.OrphanBuilder) {
		b.Code = params.Code
	}).BuildSnapshot()
	foreign := builder.NewOrphanBuilder().With(func(b *builder.OrphanBuilder) {
		b.Code = params.Code
		b.ExternalRuleID = 5555
	}).BuildSnapshot()

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(rule, nil),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(&commerce.DiscountCode{ID: 7001, RuleID: 9001, Code: params.Code}, nil),
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: params.Code}, nil),
		s.mockOrphans.EXPECT().FindByCode(gomock.Any(), params.Code).
			Return([]commands.OrphanLogSnapshot{stale, foreign}, nil),
		// Only the entry recorded against the confirmed rule is closed.
		s.mockOrphans.EXPECT().MarkResolved(gomock.Any(), stale.ID, s.clk.Now()).
			Return(nil),
		s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), nil, gomock.Any()).
			Return(snapshot, nil),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.False(result.Orphaned)
	s.Equal(snapshot, result.Coupon)
}

func (s *ProvisionerTestSuite) TestExhaustedRetriesRecordOrphan() {
	params := s.params()
	rule := &commerce.Rule{ID: 9001, Title: params.Code}
	transient := &commerce.PlatformError{
		Kind:   commerce.KindTransient,
		Op:     "create discount code",
		Status: 503,
		Body:   `{"errors":"service unavailable"}`,
	}

	s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
		Return(nil, commerce.ErrCodeNotFound)
	s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
		Return(rule, nil)
	s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
		Return(nil, transient).Times(3)
	s.mockOrphans.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry commands.OrphanEntry) (*commands.OrphanLogSnapshot, error) {
			s.Equal(int64(9001), entry.ExternalRuleID)
			s.Equal(params.Code, entry.Code)
			s.Equal(int32(3), entry.AttemptCount)
			s.Equal(`{"errors":"service unavailable"}`, entry.RawResponse)
			snap := builder.NewOrphanBuilder().BuildSnapshot()
			return &snap, nil
		})

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.True(result.Orphaned)
	s.Equal(int64(9001), result.RuleID)
	s.Nil(result.CodeID)
	s.NotEmpty(result.FailureDetail)
	s.Nil(result.Coupon)
}

func (s *ProvisionerTestSuite) TestPermanentCodeFailureOrphansWithoutRetry() {
	params := s.params()
	rule := &commerce.Rule{ID: 9001, Title: params.Code}
	permanent := &commerce.PlatformError{Kind: commerce.KindPermanent, Op: "create discount code", Status: 400}

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(rule, nil),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(nil, permanent),
		s.mockOrphans.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry commands.OrphanEntry) (*commands.OrphanLogSnapshot, error) {
				s.Equal(int32(1), entry.AttemptCount)
				snap := builder.NewOrphanBuilder().BuildSnapshot()
				return &snap, nil
			}),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.True(result.Orphaned)
}

func (s *ProvisionerTestSuite) TestForeignRuleAttachmentOrphans() {
	params := s.params()
	rule := &commerce.Rule{ID: 9001, Title: params.Code}

	s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
		Return(nil, commerce.ErrCodeNotFound)
	s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
		Return(rule, nil)
	s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
		Return(&commerce.DiscountCode{ID: 7001, RuleID: 9001, Code: params.Code}, nil).Times(3)
	// Every validation pass resolves the code to a different rule.
	s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
		Return(&commerce.CodeLookup{RuleID: 5555, CodeID: 7001, Code: params.Code}, nil).Times(3)
	s.mockOrphans.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry commands.OrphanEntry) (*commands.OrphanLogSnapshot, error) {
			s.Contains(entry.ErrorMessage, "foreign rule")
			snap := builder.NewOrphanBuilder().BuildSnapshot()
			return &snap, nil
		})

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().NoError(err)
	s.True(result.Orphaned)
}

func (s *ProvisionerTestSuite) TestInvalidSpecRejectedBeforePlatformCalls() {
	tests := []struct {
		name   string
		mutate func(*commands.ProvisionParams)
	}{
		{name: "code too short", mutate: func(p *commands.ProvisionParams) { p.Code = "AB" }},
		{name: "code with illegal characters", mutate: func(p *commands.ProvisionParams) { p.Code = "SAVE 20%" }},
		{name: "unknown discount type", mutate: func(p *commands.ProvisionParams) { p.DiscountType = "bogo" }},
		{name: "percentage over 100", mutate: func(p *commands.ProvisionParams) { p.DiscountValue = 150 }},
		{name: "zero discount value", mutate: func(p *commands.ProvisionParams) { p.DiscountValue = 0 }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			params := s.params()
			tt.mutate(&params)

			result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

			s.Require().ErrorIs(err, commands.ErrInvalidCouponSpec)
			s.Nil(result)
		})
	}
}

func (s *ProvisionerTestSuite) TestPersistFailureSurfacesAfterPlatformSuccess() {
	params := s.params()
	s.expectNoStaleOrphans(params.Code)
	rule := &commerce.Rule{ID: 9001, Title: params.Code}

	gomock.InOrder(
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(nil, commerce.ErrCodeNotFound),
		s.mockGateway.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(rule, nil),
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(9001), params.Code).
			Return(&commerce.DiscountCode{ID: 7001, RuleID: 9001, Code: params.Code}, nil),
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), params.Code).
			Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: params.Code}, nil),
		s.mockCoupons.EXPECT().CreateWithCustomer(gomock.Any(), nil, gomock.Any()).
			Return(nil, errRepo),
	)

	result, err := s.provisioner.ProvisionCoupon(context.Background(), params)

	s.Require().Error(err)
	s.Nil(result)
}

func (s *ProvisionerTestSuite) TestBackoffSchedule() {
	policy := commands.RetryPolicy{MaxAttempts: 4, BaseDelay: 2 * time.Second, SettleDelay: time.Second}

	s.Equal(time.Duration(0), policy.Backoff(1))
	s.Equal(2*time.Second, policy.Backoff(2))
	s.Equal(4*time.Second, policy.Backoff(3))
	s.Equal(8*time.Second, policy.Backoff(4))
}
