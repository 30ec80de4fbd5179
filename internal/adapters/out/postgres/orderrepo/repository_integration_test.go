package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite checks order persistence against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	t0         time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.t0 = time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("orders"))
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(zoneID string, createdAt time.Time) order.Order {
	coords, err := kernel.NewCoordinates(32.08, 34.78)
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:         uuid.NewString(),
		BusinessID: "biz-1",
		Customer: order.Customer{
			Name:    "Dana",
			Phone:   "054",
			Address: kernel.NewAddress("1 Dizengoff St", "Tel Aviv", &coords),
		},
		Items: []order.Item{
			{ProductID: "p1", ProductName: "Water 6-pack", Quantity: 2, UnitPrice: 1500},
			{ProductID: "p2", Quantity: 1, UnitPrice: 800, Discount: 100},
		},
		PaymentMethod: order.PaymentCard,
		Priority:      order.PriorityHigh,
		ZoneID:        zoneID,
		DeliveryFee:   500,
		CreatedBy:     "manager-1",
		CreatedAt:     createdAt,
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) advance(o order.Order, steps ...order.Status) order.Order {
	at := o.UpdatedAt()
	for _, st := range steps {
		at = at.Add(time.Minute)
		var err error
		if st == order.Assigned && o.Status() == order.ReadyForPickup {
			o, err = o.AssignDriver("D1", "Avi", "dispatcher-1", at)
		} else {
			o, err = o.UpdateStatus(st, "manager-1", "", at)
		}
		suite.Require().NoError(err)
	}
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder("north", suite.t0)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
	suite.Equal(o.OrderNumber(), got.OrderNumber())
	suite.Equal(o.Customer().Name, got.Customer().Name)
	suite.Equal(o.Customer().Address.String(), got.Customer().Address.String())
	suite.Require().NotNil(got.Customer().Address.Coordinates())
	suite.Equal(o.Items(), got.Items())
	suite.Equal(o.Payment(), got.Payment())
	suite.Equal(order.PriorityHigh, got.Priority())
	suite.Equal(o.Total(), got.Total())
	suite.Equal("north", got.Delivery().ZoneID)
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))
	suite.Len(got.Timeline(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycle() {
	ctx := context.Background()
	o := suite.newOrder("north", suite.t0)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	o = suite.advance(o, order.Confirmed, order.Preparing, order.ReadyForPickup, order.Assigned, order.PickedUp, order.InTransit)
	o, err := o.Complete(&order.ProofOfDelivery{ReceivedBy: "Dana", Reference: "sig-1"}, "D1", suite.t0.Add(time.Hour))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, got.Status())
	suite.Len(got.Timeline(), len(o.Timeline()))
	suite.Equal("D1", got.Delivery().DriverID)
	suite.Require().NotNil(got.Delivery().Proof)
	suite.Equal("sig-1", got.Delivery().Proof.Reference)
	suite.Require().NotNil(got.Delivery().PickedUpAt)
	suite.Require().NotNil(got.Delivery().DeliveredAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearsDriverOnUnassign() {
	ctx := context.Background()
	o := suite.advance(suite.newOrder("north", suite.t0),
		order.Confirmed, order.Preparing, order.ReadyForPickup, order.Assigned)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	o = suite.advance(o, order.ReadyForPickup)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(got.Delivery().HasDriver())
	suite.Empty(got.Delivery().DriverName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_NotFound() {
	o := suite.newOrder("north", suite.t0)

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, uuid.NewString())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, "not-a-uuid")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_Filters() {
	ctx := context.Background()
	pending := suite.newOrder("north", suite.t0)
	confirmed := suite.advance(suite.newOrder("south", suite.t0.Add(time.Minute)), order.Confirmed)
	cancelled := suite.advance(suite.newOrder("north", suite.t0.Add(2*time.Minute)), order.Cancelled)
	unzoned := suite.newOrder("", suite.t0.Add(3*time.Minute))
	for _, o := range []order.Order{pending, confirmed, cancelled, unzoned} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	ids := func(orders []order.Order) []string {
		out := make([]string, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID())
		}
		return out
	}

	all, err := suite.repository.List(ctx, ports.OrderFilter{})
	suite.Require().NoError(err)
	suite.Equal([]string{pending.ID(), confirmed.ID(), cancelled.ID(), unzoned.ID()}, ids(all))

	outstanding, err := suite.repository.List(ctx, ports.OrderFilter{OutstandingOnly: true})
	suite.Require().NoError(err)
	suite.Equal([]string{pending.ID(), confirmed.ID(), unzoned.ID()}, ids(outstanding))

	north, err := suite.repository.List(ctx, ports.OrderFilter{ZoneID: "north", OutstandingOnly: true})
	suite.Require().NoError(err)
	suite.Equal([]string{pending.ID()}, ids(north))

	byStatus, err := suite.repository.List(ctx, ports.OrderFilter{Statuses: []order.Status{order.Confirmed, order.Cancelled}})
	suite.Require().NoError(err)
	suite.Equal([]string{confirmed.ID(), cancelled.ID()}, ids(byStatus))

	limited, err := suite.repository.List(ctx, ports.OrderFilter{Limit: 2})
	suite.Require().NoError(err)
	suite.Len(limited, 2)

	none, err := suite.repository.List(ctx, ports.OrderFilter{BusinessID: "other"})
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
