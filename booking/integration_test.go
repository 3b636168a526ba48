package booking

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"ticket_hub/database"
	"ticket_hub/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultTestDSN = "host=localhost port=5432 user=ticket_hub password=ticket_hub dbname=ticket_hub_test sslmode=disable"

// newTestDB mở Postgres test database, skip nếu không kết nối được.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		t.Skipf("skipping Postgres integration tests: database unreachable")
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})

	database.Migrate(db)
	truncateAll(t, db)
	return db
}

func truncateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec(`TRUNCATE tickets, seats, tiers, events, customers RESTART IDENTITY CASCADE`).Error
	require.NoError(t, err)
}

func createSeatEvent(t *testing.T, db *gorm.DB, kind, code string, seatNumbers ...string) *model.Event {
	t.Helper()
	event := &model.Event{
		Kind:          kind,
		PublicCode:    code,
		Name:          "Midnight Premiere",
		Slug:          "midnight-premiere-" + code,
		ScheduledDate: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 10, 10, 20, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	for _, sn := range seatNumbers {
		event.Seats = append(event.Seats, model.Seat{SeatNumber: sn})
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func createTierEvent(t *testing.T, db *gorm.DB, code string, tiers ...model.Tier) *model.Event {
	t.Helper()
	event := &model.Event{
		Kind:          model.KindConcert,
		PublicCode:    code,
		Name:          "Summer Sound Festival",
		Slug:          "summer-sound-festival-" + code,
		ScheduledDate: time.Date(2026, 11, 21, 0, 0, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 11, 21, 19, 0, 0, 0, time.UTC),
		IsActive:      true,
		Tiers:         tiers,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func guestSeatInput(code string, seats ...string) model.CreateBookingInput {
	return model.CreateBookingInput{
		EventKind:    model.KindScreening,
		EventCode:    code,
		UnitPrice:    15,
		PaymentToken: "pay_test_token",
		GuestName:    "Guest Buyer",
		GuestEmail:   "guest@example.com",
		SeatNumbers:  seats,
	}
}

func guestTierInput(code, tier string) model.CreateBookingInput {
	return model.CreateBookingInput{
		EventKind:    model.KindConcert,
		EventCode:    code,
		UnitPrice:    120,
		PaymentToken: "pay_test_token",
		GuestName:    "Guest Buyer",
		GuestEmail:   "guest@example.com",
		Tier:         tier,
	}
}

// Scenario A: hai ghế trống, book cả hai → hai vé, hai ghế sold, mã vé gắn ngược.
func TestSubmitBooking_SeatRoundTrip(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindScreening, "S-101026-TESTAAA", "M1-S1", "M1-S2")

	outcome, err := SubmitBooking(db, guestSeatInput(event.PublicCode, "M1-S1", "M1-S2"))
	require.NoError(t, err)
	require.Len(t, outcome.Tickets, 2)

	gotSeats := []string{outcome.Tickets[0].SeatNumber, outcome.Tickets[1].SeatNumber}
	assert.ElementsMatch(t, []string{"M1-S1", "M1-S2"}, gotSeats)

	var seats []model.Seat
	require.NoError(t, db.Where("event_id = ?", event.ID).Order("seat_number").Find(&seats).Error)
	for _, seat := range seats {
		assert.True(t, seat.Sold, seat.SeatNumber)
		require.NotNil(t, seat.TicketCode, seat.SeatNumber)
	}

	var tickets []model.Ticket
	require.NoError(t, db.Where("event_id = ?", event.ID).Find(&tickets).Error)
	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		assert.Equal(t, model.KindScreening, ticket.EventKind)
		assert.Equal(t, AssignedSeatTier, ticket.SeatTier)
		assert.InDelta(t, 15*ProcessingFeeRate, ticket.ProcessingFee, 1e-9)
	}
}

// Scenario B + all-or-nothing: một ghế đã bán → fail toàn bộ, ghế còn lại không đổi.
func TestSubmitBooking_SeatAlreadySold(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindScreening, "S-101026-TESTBBB", "M1-S1", "M1-S2")
	require.NoError(t, db.Model(&model.Seat{}).
		Where("event_id = ? AND seat_number = ?", event.ID, "M1-S1").
		Update("sold", true).Error)

	_, err := SubmitBooking(db, guestSeatInput(event.PublicCode, "M1-S1"))
	assert.ErrorIs(t, err, ErrSeatAlreadySold)

	// All-or-nothing: ghế trống đứng trước ghế đã bán cũng phải được rollback
	_, err = SubmitBooking(db, guestSeatInput(event.PublicCode, "M1-S2", "M1-S1"))
	assert.ErrorIs(t, err, ErrSeatAlreadySold)

	var seat model.Seat
	require.NoError(t, db.Where("event_id = ? AND seat_number = ?", event.ID, "M1-S2").First(&seat).Error)
	assert.False(t, seat.Sold)

	var ticketCount int64
	require.NoError(t, db.Model(&model.Ticket{}).Where("event_id = ?", event.ID).Count(&ticketCount).Error)
	assert.Zero(t, ticketCount)
}

func TestSubmitBooking_SeatNotFound(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindScreening, "S-101026-TESTCCC", "M1-S1")

	_, err := SubmitBooking(db, guestSeatInput(event.PublicCode, "M9-S9"))
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestSubmitBooking_SeatEventSoldOut(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindScreening, "S-101026-TESTDDD", "M1-S1", "M1-S2")
	require.NoError(t, db.Model(&model.Seat{}).
		Where("event_id = ?", event.ID).
		Update("sold", true).Error)

	_, err := SubmitBooking(db, guestSeatInput(event.PublicCode, "M1-S1"))
	assert.ErrorIs(t, err, ErrEventSoldOut)
}

func TestSubmitBooking_NoSeatsRequested(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindScreening, "S-101026-TESTEEE", "M1-S1")

	_, err := SubmitBooking(db, guestSeatInput(event.PublicCode))
	assert.ErrorIs(t, err, ErrNoSeatsRequested)
}

// Kind synonym cũ vẫn book được stage show.
func TestSubmitBooking_TheatreSynonym(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindStageShow, "T-101026-TESTFFF", "R1-S1")

	input := guestSeatInput(event.PublicCode, "R1-S1")
	input.EventKind = "Theatre"

	outcome, err := SubmitBooking(db, input)
	require.NoError(t, err)
	assert.Equal(t, model.KindStageShow, outcome.EventKind)
}

func TestSubmitBooking_TierRoundTrip(t *testing.T) {
	db := newTestDB(t)
	event := createTierEvent(t, db, "C-211126-TESTAAA",
		model.Tier{Name: "VIP", Capacity: 5, CapacityRemaining: 5, UnitPrice: 120},
	)

	outcome, err := SubmitBooking(db, guestTierInput(event.PublicCode, "VIP"))
	require.NoError(t, err)
	require.Len(t, outcome.Tickets, 1)
	assert.Equal(t, "VIP", outcome.Tickets[0].Tier)

	var tier model.Tier
	require.NoError(t, db.Where("event_id = ? AND name = ?", event.ID, "VIP").First(&tier).Error)
	assert.Equal(t, 4, tier.CapacityRemaining)

	var ticket model.Ticket
	require.NoError(t, db.Where("event_id = ?", event.ID).First(&ticket).Error)
	assert.Equal(t, "VIP", ticket.SeatTier)
	assert.Nil(t, ticket.SeatNumber)
}

// Scenario C: tier hết chỗ nhưng tier khác còn → InsufficientCapacity.
func TestSubmitBooking_InsufficientCapacity(t *testing.T) {
	db := newTestDB(t)
	event := createTierEvent(t, db, "C-211126-TESTBBB",
		model.Tier{Name: "VIP", Capacity: 10, CapacityRemaining: 0, UnitPrice: 120},
		model.Tier{Name: "Standard", Capacity: 100, CapacityRemaining: 40, UnitPrice: 45},
	)

	_, err := SubmitBooking(db, guestTierInput(event.PublicCode, "VIP"))
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestSubmitBooking_TierEventSoldOut(t *testing.T) {
	db := newTestDB(t)
	event := createTierEvent(t, db, "C-211126-TESTCCC",
		model.Tier{Name: "VIP", Capacity: 10, CapacityRemaining: 0, UnitPrice: 120},
		model.Tier{Name: "Standard", Capacity: 100, CapacityRemaining: 0, UnitPrice: 45},
	)

	_, err := SubmitBooking(db, guestTierInput(event.PublicCode, "VIP"))
	assert.ErrorIs(t, err, ErrEventSoldOut)
}

func TestSubmitBooking_TierNotFound(t *testing.T) {
	db := newTestDB(t)
	event := createTierEvent(t, db, "C-211126-TESTDDD",
		model.Tier{Name: "VIP", Capacity: 10, CapacityRemaining: 10, UnitPrice: 120},
	)

	_, err := SubmitBooking(db, guestTierInput(event.PublicCode, "Balcony"))
	assert.ErrorIs(t, err, ErrTierNotFound)
}

// Scenario E: thiếu guest contact → fail trước khi đụng inventory.
func TestSubmitBooking_GuestContactBeforeInventory(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindScreening, "S-101026-TESTGGG", "M1-S1")

	input := guestSeatInput(event.PublicCode, "M1-S1")
	input.GuestEmail = ""

	_, err := SubmitBooking(db, input)
	assert.ErrorIs(t, err, ErrMissingGuestContact)

	var seat model.Seat
	require.NoError(t, db.Where("event_id = ?", event.ID).First(&seat).Error)
	assert.False(t, seat.Sold)
}

// Scenario D: 20 request đồng thời tranh 1 chỗ cuối → đúng 1 thành công.
func TestSubmitBooking_ConcurrentTierRace(t *testing.T) {
	db := newTestDB(t)
	event := createTierEvent(t, db, "C-211126-TESTEEE",
		model.Tier{Name: "VIP", Capacity: 1, CapacityRemaining: 1, UnitPrice: 120},
	)

	const workers = 20
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := guestTierInput(event.PublicCode, "VIP")
			input.GuestEmail = fmt.Sprintf("guest%d@example.com", i)
			_, errs[i] = SubmitBooking(db, input)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t,
			IsBookingError(err),
			"unexpected error kind: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	var tier model.Tier
	require.NoError(t, db.Where("event_id = ?", event.ID).First(&tier).Error)
	assert.Equal(t, 0, tier.CapacityRemaining)

	var ticketCount int64
	require.NoError(t, db.Model(&model.Ticket{}).Where("event_id = ?", event.ID).Count(&ticketCount).Error)
	assert.EqualValues(t, 1, ticketCount)
}

// Hai request đồng thời cùng một ghế → chỉ một bên được bán.
func TestSubmitBooking_ConcurrentSeatRace(t *testing.T) {
	db := newTestDB(t)
	event := createSeatEvent(t, db, model.KindScreening, "S-101026-TESTHHH", "M1-S1")

	const workers = 10
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := guestSeatInput(event.PublicCode, "M1-S1")
			input.GuestEmail = fmt.Sprintf("guest%d@example.com", i)
			_, errs[i] = SubmitBooking(db, input)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	var ticketCount int64
	require.NoError(t, db.Model(&model.Ticket{}).Where("event_id = ?", event.ID).Count(&ticketCount).Error)
	assert.EqualValues(t, 1, ticketCount)
}

// Tổng vé một tier không bao giờ vượt capacity gốc.
func TestSubmitBooking_TierCapacityNeverExceeded(t *testing.T) {
	db := newTestDB(t)
	event := createTierEvent(t, db, "C-211126-TESTFFF",
		model.Tier{Name: "Standard", Capacity: 3, CapacityRemaining: 3, UnitPrice: 45},
	)

	succeeded := 0
	for i := 0; i < 5; i++ {
		input := guestTierInput(event.PublicCode, "Standard")
		input.GuestEmail = fmt.Sprintf("guest%d@example.com", i)
		if _, err := SubmitBooking(db, input); err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 3, succeeded)

	var tier model.Tier
	require.NoError(t, db.Where("event_id = ?", event.ID).First(&tier).Error)
	assert.Equal(t, 0, tier.CapacityRemaining)

	var ticketCount int64
	require.NoError(t, db.Model(&model.Ticket{}).Where("event_id = ?", event.ID).Count(&ticketCount).Error)
	assert.EqualValues(t, int64(tier.Capacity), ticketCount)
}
