package get_shop_config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

func TestHandle(t *testing.T) {
	store, err := schedule.NewStore(domain.DefaultShopConfig(), nil, nil, logger.Nop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	NewHandler(store, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/config", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"name": "Barber Shop",
		"openTime": "09:00",
		"closeTime": "20:00",
		"slotMinutes": 60,
		"seatsPerSlot": 5,
		"slots": ["9:00 AM","10:00 AM","11:00 AM","12:00 PM","1:00 PM","2:00 PM","3:00 PM","4:00 PM","5:00 PM","6:00 PM","7:00 PM"]
	}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "9961583051")
}
