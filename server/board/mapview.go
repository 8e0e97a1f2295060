package board

import (
	"github.com/topi314/activity-board/server/activities"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"max_zoom"`
}

type Marker struct {
	Name        string `json:"name"`
	Position    LatLng `json:"position"`
	Room        string `json:"room"`
	Address     string `json:"address"`
	Schedule    string `json:"schedule"`
	SpotsLeft   int    `json:"spots_left"`
	Description string `json:"description"`
	SelectURL   string `json:"select_url"`
}

// MapView is what the browser needs to draw the map widget.
type MapView struct {
	Center    LatLng    `json:"center"`
	Zoom      int       `json:"zoom"`
	Tiles     TileLayer `json:"tiles"`
	Markers   []Marker  `json:"markers"`
	OpenPopup string    `json:"open_popup,omitempty"`
}

// Map holds the marker set and viewport of one UI session.
type Map struct {
	cfg MapConfig

	center    LatLng
	zoom      int
	names     []string
	markers   map[string]Marker
	openPopup string
}

// NewMap initializes a map centered on the configured default with no markers.
func NewMap(cfg MapConfig) *Map {
	return &Map{
		cfg:     cfg,
		center:  LatLng{Lat: cfg.Lat, Lng: cfg.Lng},
		zoom:    cfg.Zoom,
		markers: make(map[string]Marker),
	}
}

// Plot drops every marker and adds one per activity that has both coordinates.
// A coordinate counts when it was sent, so 0 is a valid latitude or longitude.
// The viewport is left untouched.
func (m *Map) Plot(snapshot *activities.Snapshot) {
	m.names = nil
	m.markers = make(map[string]Marker)
	m.openPopup = ""

	for name, activity := range snapshot.All() {
		if !activity.Location.HasCoordinates() {
			continue
		}
		m.names = append(m.names, name)
		m.markers[name] = Marker{
			Name: name,
			Position: LatLng{
				Lat: *activity.Location.Lat,
				Lng: *activity.Location.Lng,
			},
			Room:        activity.Location.Room,
			Address:     activity.Location.Address,
			Schedule:    activity.Schedule,
			SpotsLeft:   activity.SpotsLeft(),
			Description: activity.Description,
			SelectURL:   SelectURL(name),
		}
	}
}

func (m *Map) Marker(name string) (Marker, bool) {
	marker, ok := m.markers[name]
	return marker, ok
}

// Focus centers the map on the marker of name at the focus zoom and opens its
// popup. It reports false and changes nothing when there is no such marker.
func (m *Map) Focus(name string) bool {
	marker, ok := m.markers[name]
	if !ok {
		return false
	}
	m.center = marker.Position
	m.zoom = m.cfg.FocusZoom
	m.openPopup = name
	return true
}

func (m *Map) View() MapView {
	markers := make([]Marker, 0, len(m.names))
	for _, name := range m.names {
		markers = append(markers, m.markers[name])
	}
	return MapView{
		Center: m.center,
		Zoom:   m.zoom,
		Tiles: TileLayer{
			URL:         m.cfg.TileURL,
			Attribution: m.cfg.Attribution,
			MaxZoom:     m.cfg.MaxZoom,
		},
		Markers:   markers,
		OpenPopup: m.openPopup,
	}
}
