package validator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/neighborhood-gateway/internal/pkg/validator"
	"github.com/neighborhood-gateway/internal/usecase/dto"
)

func ptrFloat64(v float64) *float64 {
	return &v
}

func TestValidate_CoordinateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CoordinateRequest
		wantErr string
	}{
		{name: "valid", req: dto.CoordinateRequest{Lon: ptrFloat64(-71.0589), Lat: ptrFloat64(42.3601)}},
		{name: "zero is a valid coordinate", req: dto.CoordinateRequest{Lon: ptrFloat64(0), Lat: ptrFloat64(0)}},
		{name: "missing lon", req: dto.CoordinateRequest{Lat: ptrFloat64(42.3601)}, wantErr: "lon is required"},
		{name: "missing both", req: dto.CoordinateRequest{}, wantErr: "lon is required; lat is required"},
		{name: "lon out of range", req: dto.CoordinateRequest{Lon: ptrFloat64(-200), Lat: ptrFloat64(42.36)}, wantErr: "lon must be >= -180"},
		{name: "lat out of range", req: dto.CoordinateRequest{Lon: ptrFloat64(-71.05), Lat: ptrFloat64(90.5)}, wantErr: "lat must be <= 90"},
		{name: "nan", req: dto.CoordinateRequest{Lon: ptrFloat64(math.NaN()), Lat: ptrFloat64(42.36)}, wantErr: "lon must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, pkgerrors.ErrValidation))

			var appErr *pkgerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Message, tt.wantErr)
		})
	}
}

func TestValidate_GeocodeRequest(t *testing.T) {
	assert.NoError(t, validator.Validate(&dto.GeocodeRequest{Query: "200 Clarendon St, Boston, MA"}))

	err := validator.Validate(&dto.GeocodeRequest{})
	require.Error(t, err)
	var appErr *pkgerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "q is required", appErr.Message)
	assert.Equal(t, 400, appErr.StatusCode)

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, validator.Validate(&dto.GeocodeRequest{Query: string(long)}))
}
