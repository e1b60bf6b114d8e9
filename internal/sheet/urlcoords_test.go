package sheet

import (
	"testing"

	"scout/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCoords(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want *entity.Coordinate
	}{
		{
			name: "place link with @lat,lng",
			url:  "https://www.google.com/maps/place/Somewhere/@47.3774241,8.5331746,17z/",
			want: &entity.Coordinate{Lat: 47.3774241, Lng: 8.5331746},
		},
		{
			name: "query link",
			url:  "https://www.google.com/maps?q=47.3774241,8.5331746",
			want: &entity.Coordinate{Lat: 47.3774241, Lng: 8.5331746},
		},
		{
			name: "directions destination",
			url:  "https://www.google.com/maps?daddr=47.3774241,8.5331746",
			want: &entity.Coordinate{Lat: 47.3774241, Lng: 8.5331746},
		},
		{
			name: "directions source",
			url:  "https://www.google.com/maps?saddr=-33.8567844,151.2152967",
			want: &entity.Coordinate{Lat: -33.8567844, Lng: 151.2152967},
		},
		{
			name: "data blob with !3d!4d",
			url:  "https://www.google.com/maps/dir//Place/data=!3d47.3774241!4d8.5331746",
			want: &entity.Coordinate{Lat: 47.3774241, Lng: 8.5331746},
		},
		{
			name: "shared link with ll",
			url:  "https://www.google.com/maps?ll=47.3774241,8.5331746&z=15",
			want: &entity.Coordinate{Lat: 47.3774241, Lng: 8.5331746},
		},
		{
			name: "search link with encoded space",
			url:  "https://www.google.com/maps/search/47.030515,+8.295879?entry=tts",
			want: &entity.Coordinate{Lat: 47.030515, Lng: 8.295879},
		},
		{
			name: "bare pair passes bounds gate",
			url:  "https://example.com/listing/47.3774241,8.5331746",
			want: &entity.Coordinate{Lat: 47.3774241, Lng: 8.5331746},
		},
		{
			name: "bare pair outside bounds is rejected",
			url:  "https://example.com/build/247.12345,999.54321",
			want: nil,
		},
		{
			name: "at pair outside bounds is rejected",
			url:  "https://www.google.com/maps/place/Somewhere/@95.5,200.5,17z/",
			want: nil,
		},
		{
			name: "out-of-bounds match falls through to a later in-bounds rung",
			url:  "https://www.google.com/maps/place/X/@95.5,200.5,17z/?ll=47.3774241,8.5331746",
			want: &entity.Coordinate{Lat: 47.3774241, Lng: 8.5331746},
		},
		{
			name: "no coordinates at all",
			url:  "https://www.google.com/maps/place/Bahnhofstrasse",
			want: nil,
		},
		{
			name: "empty url",
			url:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCoords(tt.url)
			if tt.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.want.Lat, got.Lat, 1e-9)
			assert.InDelta(t, tt.want.Lng, got.Lng, 1e-9)
		})
	}
}

func TestExtractCoords_LadderOrder(t *testing.T) {
	// A URL carrying both an @pair and a !3d!4d blob resolves through the
	// earlier @ pattern.
	url := "https://www.google.com/maps/place/X/@47.1000000,8.1000000,17z/data=!3d47.2000000!4d8.2000000"
	got := ExtractCoords(url)
	require.NotNil(t, got)
	assert.InDelta(t, 47.1, got.Lat, 1e-9)
	assert.InDelta(t, 8.1, got.Lng, 1e-9)
}
