package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoin       = "join"
	InboundTypeLeave      = "leave"
	InboundTypeCreateRoom = "createRoom"
	InboundTypeAudio      = "audio"
	InboundTypeText       = "textMessage"
	InboundTypeKick       = "kickParticipant"

	OutboundTypeRooms        = "rooms"
	OutboundTypeParticipants = "participants"
	OutboundTypeHistory      = "history"
	OutboundTypeAudio        = "audio"
	OutboundTypeText         = "textMessage"
	OutboundTypeJoinError    = "join_error"
	OutboundTypeKicked       = "kicked"
	OutboundTypeError        = "error"
)

// User identifies a participant. IDs are chosen by the client.
type User struct {
	ID   string `json:"id" validate:"required,max=128"`
	Name string `json:"name" validate:"max=128"`
}

// JoinData requests to join a room, creating it when unknown.
type JoinData struct {
	RoomID     string `json:"roomId" validate:"required,max=128"`
	User       User   `json:"user"`
	Password   string `json:"password,omitempty" validate:"max=64"`
	InviteCode string `json:"inviteCode,omitempty" validate:"max=128"`
}

// LeaveData requests to leave a room.
type LeaveData struct {
	RoomID string `json:"roomId" validate:"required,max=128"`
	UserID string `json:"userId" validate:"max=128"`
}

// CreateRoomData registers a room.
type CreateRoomData struct {
	RoomID     string `json:"roomId" validate:"required,max=128"`
	Name       string `json:"name" validate:"max=128"`
	CreatedBy  string `json:"createdBy" validate:"max=128"`
	CreatedAt  string `json:"createdAt" validate:"max=64"`
	Password   string `json:"password,omitempty" validate:"max=64"`
	InviteCode string `json:"inviteCode,omitempty" validate:"max=128"`
}

// AudioData carries an opaque audio blob for the rest of the room.
// A client-supplied sentAt is ignored; the server stamps its own.
type AudioData struct {
	Room      string          `json:"room" validate:"required,max=128"`
	AudioBlob json.RawMessage `json:"audioBlob" validate:"required"`
	Sender    json.RawMessage `json:"sender,omitempty"`
	SentAt    json.RawMessage `json:"sentAt,omitempty"`
}

// TextData is the routing part of a textMessage payload. The full payload
// object is relayed as received.
type TextData struct {
	RoomID string `json:"roomId" validate:"required,max=128"`
}

// KickData asks the room creator's authority to remove a participant.
type KickData struct {
	RoomID       string `json:"roomId" validate:"required,max=128"`
	TargetUserID string `json:"targetUserId" validate:"required,max=128"`
	ByUserID     string `json:"byUserId" validate:"required,max=128"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Room  string `json:"room,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Participant is a room member as shown to clients.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomSummary describes a room without its secrets.
type RoomSummary struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Participants  []Participant `json:"participants"`
	CreatedBy     string        `json:"createdBy,omitempty"`
	CreatedAt     string        `json:"createdAt"`
	HasPassword   bool          `json:"hasPassword"`
	HasInviteCode bool          `json:"hasInviteCode"`
	InviteLink    string        `json:"inviteLink,omitempty"`
}

// EventAudio is a relayed audio message.
type EventAudio struct {
	ID        string          `json:"id"`
	Room      string          `json:"room"`
	AudioBlob json.RawMessage `json:"audioBlob"`
	Sender    json.RawMessage `json:"sender,omitempty"`
	SentAt    string          `json:"sentAt"`
}

// EventJoinError explains a refused join.
type EventJoinError struct {
	Message string `json:"message"`
}

// EventKicked tells a client it was removed from a room.
type EventKicked struct {
	RoomID string `json:"roomId"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
