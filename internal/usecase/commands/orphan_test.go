//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/infra/commerce"
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/tests/common/builder"
	commandsmock "membership-backoffice/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrphanCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockOrphans *commandsmock.MockOrphanLogRepository
	mockGateway *commandsmock.MockCommerceGateway
	clk         *clock.MockClock
	cmd         commands.OrphanCommands
}

func (s *OrphanCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrphans = commandsmock.NewMockOrphanLogRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockCommerceGateway(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Now().UTC())
	s.cmd = commands.NewOrphanCommands(s.mockOrphans, s.mockGateway, s.clk)
}

func (s *OrphanCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrphanCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrphanCommandsTestSuite))
}

func (s *OrphanCommandsTestSuite) TestMarkResolved() {
	id := uuid.New()

	s.Run("stamps the resolution time from the clock", func() {
		s.mockOrphans.EXPECT().MarkResolved(gomock.Any(), id, s.clk.Now()).Return(nil)

		s.Require().NoError(s.cmd.MarkResolved(context.Background(), id))
	})

	s.Run("missing entry maps to orphan not found", func() {
		s.mockOrphans.EXPECT().MarkResolved(gomock.Any(), id, gomock.Any()).
			Return(infra.WrapRepoErr("orphan not found", nil, infra.KindNotFound))

		err := s.cmd.MarkResolved(context.Background(), id)

		s.Require().ErrorIs(err, commands.ErrOrphanNotFound)
	})
}

func (s *OrphanCommandsTestSuite) TestRetrySweep() {
	s.Run("empty backlog reports zeroes", func() {
		s.mockOrphans.EXPECT().FindUnresolved(gomock.Any()).
			Return([]commands.OrphanLogSnapshot{}, nil)

		report, err := s.cmd.RetrySweep(context.Background())

		s.Require().NoError(err)
		s.Equal(&commands.RetryReport{}, report)
	})

	s.Run("resolves repairable entries and counts the stubborn ones", func() {
		good := builder.NewOrphanBuilder().With(func(o *builder.OrphanBuilder) {
			o.ExternalRuleID = 101
			o.Code = "GOODCODE"
		}).BuildSnapshot()
		bad := builder.NewOrphanBuilder().With(func(o *builder.OrphanBuilder) {
			o.ExternalRuleID = 202
			o.Code = "BADCODE"
		}).BuildSnapshot()
		outage := &commerce.PlatformError{Kind: commerce.KindTransient, Op: "create discount code", Status: 503}

		s.mockOrphans.EXPECT().FindUnresolved(gomock.Any()).
			Return([]commands.OrphanLogSnapshot{good, bad}, nil)
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(101), "GOODCODE").
			Return(&commerce.DiscountCode{ID: 11, RuleID: 101, Code: "GOODCODE"}, nil)
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), "GOODCODE").
			Return(&commerce.CodeLookup{RuleID: 101, CodeID: 11, Code: "GOODCODE"}, nil)
		s.mockOrphans.EXPECT().MarkResolved(gomock.Any(), good.ID, gomock.Any()).Return(nil)
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(202), "BADCODE").
			Return(nil, outage)

		report, err := s.cmd.RetrySweep(context.Background())

		s.Require().NoError(err)
		s.Equal(&commands.RetryReport{Attempted: 2, Resolved: 1, Failed: 1}, report)
	})

	s.Run("code conflict still resolves when the lookup binds the rule", func() {
		entry := builder.NewOrphanBuilder().With(func(o *builder.OrphanBuilder) {
			o.ExternalRuleID = 303
			o.Code = "DUPCODE"
		}).BuildSnapshot()
		conflict := &commerce.PlatformError{Kind: commerce.KindConflict, Op: "create discount code", Status: 422}

		s.mockOrphans.EXPECT().FindUnresolved(gomock.Any()).
			Return([]commands.OrphanLogSnapshot{entry}, nil)
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(303), "DUPCODE").
			Return(nil, conflict)
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), "DUPCODE").
			Return(&commerce.CodeLookup{RuleID: 303, CodeID: 33, Code: "DUPCODE"}, nil)
		s.mockOrphans.EXPECT().MarkResolved(gomock.Any(), entry.ID, gomock.Any()).Return(nil)

		report, err := s.cmd.RetrySweep(context.Background())

		s.Require().NoError(err)
		s.Equal(&commands.RetryReport{Attempted: 1, Resolved: 1}, report)
	})

	s.Run("code bound to a foreign rule stays unresolved", func() {
		entry := builder.NewOrphanBuilder().With(func(o *builder.OrphanBuilder) {
			o.ExternalRuleID = 404
			o.Code = "STRAYCODE"
		}).BuildSnapshot()

		s.mockOrphans.EXPECT().FindUnresolved(gomock.Any()).
			Return([]commands.OrphanLogSnapshot{entry}, nil)
		s.mockGateway.EXPECT().CreateCode(gomock.Any(), int64(404), "STRAYCODE").
			Return(&commerce.DiscountCode{ID: 44, RuleID: 404, Code: "STRAYCODE"}, nil)
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), "STRAYCODE").
			Return(&commerce.CodeLookup{RuleID: 999, CodeID: 44, Code: "STRAYCODE"}, nil)

		report, err := s.cmd.RetrySweep(context.Background())

		s.Require().NoError(err)
		s.Equal(&commands.RetryReport{Attempted: 1, Failed: 1}, report)
	})

	s.Run("backlog read failure aborts the sweep", func() {
		s.mockOrphans.EXPECT().FindUnresolved(gomock.Any()).Return(nil, errRepo)

		report, err := s.cmd.RetrySweep(context.Background())

		s.Require().Error(err)
		s.Nil(report)
	})
}
