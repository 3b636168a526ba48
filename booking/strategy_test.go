package booking

import (
	"testing"

	"ticket_hub/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEventKind(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SCREENING", model.KindScreening},
		{"MovieSchema", model.KindScreening},
		{"Movie", model.KindScreening},
		{"STAGE_SHOW", model.KindStageShow},
		{"TheatreSchema", model.KindStageShow},
		{"Theatre", model.KindStageShow},
		{"CONCERT", model.KindConcert},
		{"ConcertSchema", model.KindConcert},
		{"Concert", model.KindConcert},
		{"EVENT", model.KindGenericEvent},
		{"OtherEventSchema", model.KindGenericEvent},
		{"OtherEvent", model.KindGenericEvent},
	}
	for _, tc := range cases {
		got, err := NormalizeEventKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizeEventKind_FailsClosed(t *testing.T) {
	for _, kind := range []string{"", "Webinar", "movie", "theatre ", "CONCERT2"} {
		_, err := NormalizeEventKind(kind)
		assert.ErrorIs(t, err, ErrUnsupportedEventKind, "kind %q", kind)
	}
}

func TestStrategyFor(t *testing.T) {
	seatKinds := []string{"SCREENING", "Movie", "STAGE_SHOW", "Theatre"}
	for _, kind := range seatKinds {
		s, err := StrategyFor(kind)
		require.NoError(t, err)
		assert.IsType(t, seatBookingStrategy{}, s, kind)
	}

	tierKinds := []string{"CONCERT", "Concert", "EVENT", "OtherEvent"}
	for _, kind := range tierKinds {
		s, err := StrategyFor(kind)
		require.NoError(t, err)
		assert.IsType(t, tierBookingStrategy{}, s, kind)
	}

	_, err := StrategyFor("Festival")
	assert.ErrorIs(t, err, ErrUnsupportedEventKind)
}

func TestValidateBuyer(t *testing.T) {
	customerId := uint(7)

	t.Run("missing payment token", func(t *testing.T) {
		err := validateBuyer(model.CreateBookingInput{CustomerId: &customerId})
		assert.ErrorIs(t, err, ErrMissingPaymentToken)
	})

	t.Run("guest without contact", func(t *testing.T) {
		err := validateBuyer(model.CreateBookingInput{PaymentToken: "pay_x", GuestName: "A"})
		assert.ErrorIs(t, err, ErrMissingGuestContact)

		err = validateBuyer(model.CreateBookingInput{PaymentToken: "pay_x", GuestEmail: "a@b.c"})
		assert.ErrorIs(t, err, ErrMissingGuestContact)
	})

	t.Run("customer ok without guest fields", func(t *testing.T) {
		err := validateBuyer(model.CreateBookingInput{PaymentToken: "pay_x", CustomerId: &customerId})
		assert.NoError(t, err)
	})

	t.Run("guest ok with name and email", func(t *testing.T) {
		err := validateBuyer(model.CreateBookingInput{
			PaymentToken: "pay_x",
			GuestName:    "Guest",
			GuestEmail:   "guest@example.com",
		})
		assert.NoError(t, err)
	})
}

func TestDedupeSeats(t *testing.T) {
	got := dedupeSeats([]string{"M1-S1", " M1-S2 ", "M1-S1", "", "M1-S3"})
	assert.Equal(t, []string{"M1-S1", "M1-S2", "M1-S3"}, got)

	assert.Empty(t, dedupeSeats(nil))
	assert.Empty(t, dedupeSeats([]string{"", "  "}))
}
