package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/hoteldb/pkg/hotel"
	"github.com/ssargent/hoteldb/pkg/report"
)

// Server holds the API server state.
type Server struct {
	svc     *hotel.Service
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server over the domain service.
func NewServer(svc *hotel.Service, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		svc:     svc,
		config:  config,
		metrics: metrics,
	}
}

// recordOp reports one domain operation to the metrics, when present.
func (s *Server) recordOp(operation string, err error, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordOperation(operation, err == nil, time.Since(start))
	}
}

// sendServiceError maps domain errors onto HTTP statuses: absence and
// refused operations are both 404 (the service does not distinguish them),
// everything else is a server error.
func sendServiceError(w http.ResponseWriter, err error) {
	if err == hotel.ErrNotFound {
		sendError(w, "Record not found", http.StatusNotFound)
		return
	}
	sendError(w, fmt.Sprintf("Operation failed: %v", err), http.StatusInternalServerError)
}

// parseID reads the {id} URL parameter.
func parseID(r *http.Request) (uint32, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

// includeDeleted reads the ?include_deleted query flag.
func includeDeleted(r *http.Request) bool {
	return r.URL.Query().Get("include_deleted") == "true"
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// --- Rooms ---

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rooms, err := s.svc.Rooms(includeDeleted(r))
	s.recordOp("list_rooms", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}
	sendSuccess(w, out)
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid room id", http.StatusBadRequest)
		return
	}
	room, err := s.svc.Room(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toRoomResponse(room))
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	start := time.Now()
	room, err := s.svc.AddRoom(req.Type, req.Floor, req.Capacity, req.MaxCards)
	s.recordOp("add_room", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toRoomResponse(room))
}

func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid room id", http.StatusBadRequest)
		return
	}
	var req UpdateRoomRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	start := time.Now()
	room, err := s.svc.UpdateRoom(id, hotel.RoomUpdate{
		Type:     req.Type,
		Floor:    req.Floor,
		Capacity: req.Capacity,
		MaxCards: req.MaxCards,
	})
	s.recordOp("update_room", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toRoomResponse(room))
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid room id", http.StatusBadRequest)
		return
	}
	start := time.Now()
	err = s.svc.DeleteRoom(id)
	s.recordOp("delete_room", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, map[string]string{"message": "Room deleted"})
}

func (s *Server) handleRoomKeycards(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid room id", http.StatusBadRequest)
		return
	}
	cards, err := s.svc.KeycardsByRoom(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	out := make([]KeycardResponse, 0, len(cards))
	for _, k := range cards {
		out = append(out, toKeycardResponse(k))
	}
	sendSuccess(w, out)
}

// --- Guests ---

func (s *Server) handleListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := s.svc.Guests(includeDeleted(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	out := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, toGuestResponse(g))
	}
	sendSuccess(w, out)
}

func (s *Server) handleGetGuest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid guest id", http.StatusBadRequest)
		return
	}
	guest, err := s.svc.Guest(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toGuestResponse(guest))
}

func (s *Server) handleCreateGuest(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	start := time.Now()
	guest, err := s.svc.AddGuest(req.FullName, req.Phone, req.IDNo)
	s.recordOp("add_guest", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toGuestResponse(guest))
}

func (s *Server) handleUpdateGuest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid guest id", http.StatusBadRequest)
		return
	}
	var req UpdateGuestRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	start := time.Now()
	guest, err := s.svc.UpdateGuest(id, hotel.GuestUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
		IDNo:     req.IDNo,
	})
	s.recordOp("update_guest", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toGuestResponse(guest))
}

func (s *Server) handleDeleteGuest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid guest id", http.StatusBadRequest)
		return
	}
	start := time.Now()
	err = s.svc.DeleteGuest(id)
	s.recordOp("delete_guest", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, map[string]string{"message": "Guest deleted"})
}

// --- Stays ---

func (s *Server) handleListStays(w http.ResponseWriter, r *http.Request) {
	stays, err := s.svc.Stays(includeDeleted(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	out := make([]StayResponse, 0, len(stays))
	for _, st := range stays {
		out = append(out, toStayResponse(st))
	}
	sendSuccess(w, out)
}

func (s *Server) handleGetStay(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid stay id", http.StatusBadRequest)
		return
	}
	stay, err := s.svc.Stay(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toStayResponse(stay))
}

func (s *Server) handleCheckin(w http.ResponseWriter, r *http.Request) {
	var req CheckinRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	start := time.Now()
	stay, err := s.svc.Checkin(req.GuestID, req.RoomID, req.Date, req.Cards)
	s.recordOp("checkin", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toStayResponse(stay))
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid stay id", http.StatusBadRequest)
		return
	}
	var req CheckoutRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	start := time.Now()
	err = s.svc.Checkout(id, req.Date)
	s.recordOp("checkout", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	stay, err := s.svc.Stay(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, toStayResponse(stay))
}

func (s *Server) handleDeleteStay(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid stay id", http.StatusBadRequest)
		return
	}
	start := time.Now()
	err = s.svc.DeleteStay(id)
	s.recordOp("delete_stay", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, map[string]string{"message": "Stay deleted"})
}

// --- Keycards ---

func (s *Server) handleListKeycards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.svc.Keycards(includeDeleted(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	out := make([]KeycardResponse, 0, len(cards))
	for _, k := range cards {
		out = append(out, toKeycardResponse(k))
	}
	sendSuccess(w, out)
}

func (s *Server) handleDeleteKeycard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		sendError(w, "Invalid keycard id", http.StatusBadRequest)
		return
	}
	start := time.Now()
	err = s.svc.DeleteKeycard(id)
	s.recordOp("delete_keycard", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, map[string]string{"message": "Keycard deleted"})
}

// --- Report ---

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	text, err := report.New(s.svc).BuildText()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text + "\n"))
}

func (s *Server) handleSaveReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path, err := report.New(s.svc).Save(s.svc.Config().ReportDir)
	s.recordOp("save_report", err, start)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccess(w, map[string]string{"path": path})
}
