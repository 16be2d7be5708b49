package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

type failingStore struct {
	getErr error
	putErr error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }

func (f failingStore) Put(context.Context, string, []byte) error { return f.putErr }

type recordedOps struct {
	ops []string
}

func (r *recordedOps) RecordPersistence(operation, result string) {
	r.ops = append(r.ops, operation+"/"+result)
}

func sampleSchedule() domain.Schedule {
	created := time.Date(2024, 6, 1, 8, 30, 0, 123000000, time.UTC)
	return domain.Schedule{
		"2024-06-01": {
			"9:00 AM": {
				{ID: 1717230600123, Name: "Ravi", Contact: "+919961583051", CreatedAt: created},
				{ID: 1717230600124, Name: "Asha", Contact: "9961583051", CreatedAt: created.Add(time.Millisecond)},
			},
			"10:00 AM": {},
		},
		"2024-06-02": {
			"7:00 PM": {
				{ID: 1717230600200, Name: "Late", Contact: "1234567", CreatedAt: created.Add(time.Hour)},
			},
		},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	original := sampleSchedule()

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncode_Format(t *testing.T) {
	data, err := Encode(domain.Schedule{
		"2024-06-01": {"9:00 AM": {{
			ID:        1717230600000,
			Name:      "Ravi",
			Contact:   "+919961583051",
			CreatedAt: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
		}}},
	})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"2024-06-01":{"9:00 AM":[{"id":1717230600000,"name":"Ravi","whatsapp":"+919961583051","createdAt":"2024-06-01T08:30:00.000Z"}]}}`,
		string(data))
}

func TestDecode_CompatibleInputs(t *testing.T) {
	tests := []struct {
		name string
		data string
		want domain.Schedule
	}{
		{name: "empty", data: "", want: domain.Schedule{}},
		{name: "whitespace", data: "  \n", want: domain.Schedule{}},
		{name: "null", data: "null", want: domain.Schedule{}},
		{name: "empty object", data: "{}", want: domain.Schedule{}},
		{
			name: "string id and offset timestamp",
			data: `{"2024-06-01":{"9:00 AM":[{"id":"42","name":"A","whatsapp":"1234567","createdAt":"2024-06-01T14:00:00.000+05:30"}]}}`,
			want: domain.Schedule{"2024-06-01": {"9:00 AM": {{
				ID: 42, Name: "A", Contact: "1234567",
				CreatedAt: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
			}}}},
		},
		{
			name: "missing timestamp",
			data: `{"2024-06-01":{"9:00 AM":[{"id":7,"name":"A","whatsapp":"1234567"}]}}`,
			want: domain.Schedule{"2024-06-01": {"9:00 AM": {{ID: 7, Name: "A", Contact: "1234567"}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Corrupt(t *testing.T) {
	inputs := []string{
		"{not json",
		`[1,2,3]`,
		`{"2024-06-01":{"9:00 AM":[{"id":"abc"}]}}`,
		`{"2024-06-01":{"9:00 AM":[{"id":1,"createdAt":"yesterday"}]}}`,
	}

	for _, input := range inputs {
		_, err := Decode([]byte(input))
		assert.ErrorIs(t, err, ErrCorruptPayload, input)
	}
}

func TestRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	ops := &recordedOps{}
	repo := NewRepository(store, "", ops, logger.Nop())

	loaded, ok := repo.Load(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Schedule{}, loaded, "missing key loads empty")

	original := sampleSchedule()
	require.NoError(t, repo.Save(ctx, original))

	raw, err := store.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	loaded, ok = repo.Load(ctx)
	assert.True(t, ok)
	assert.Equal(t, original, loaded)
	assert.Equal(t, []string{
		"load/" + metrics.ResultSuccess,
		"save/" + metrics.ResultSuccess,
		"load/" + metrics.ResultSuccess,
	}, ops.ops)
}

func TestRepository_LoadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt payload", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Put(ctx, DefaultKey, []byte("{broken")))
		ops := &recordedOps{}

		got, ok := NewRepository(store, DefaultKey, ops, logger.Nop()).Load(ctx)
		assert.True(t, ok, "corrupt data is not retried")
		assert.Equal(t, domain.Schedule{}, got)
		assert.Equal(t, []string{"load/" + metrics.ResultFailure}, ops.ops)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		repo := NewRepository(failingStore{getErr: errors.New("connection refused")}, DefaultKey, &recordedOps{}, logger.Nop())
		got, ok := repo.Load(ctx)
		assert.False(t, ok, "unavailable backend is reported")
		assert.Equal(t, domain.Schedule{}, got)
	})
}

func TestRepository_SaveFailure(t *testing.T) {
	ops := &recordedOps{}
	repo := NewRepository(failingStore{putErr: errors.New("disk full")}, DefaultKey, ops, logger.Nop())

	err := repo.Save(context.Background(), sampleSchedule())
	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	assert.Equal(t, []string{"save/" + metrics.ResultFailure}, ops.ops)
}
