package http

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"

	"github.com/vovakirdan/roomrelay/internal/core"
	"github.com/vovakirdan/roomrelay/internal/proto"
)

// sentAtLayout renders timestamps as ISO 8601 UTC with milliseconds.
const sentAtLayout = "2006-01-02T15:04:05.000Z07:00"

// inboundToCommand decodes and validates an envelope. A non-nil *proto.Error
// is answered to the sender and the frame is otherwise ignored.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := proto.Decode(inbound.Data, &join); err != nil {
			return nil, badRequest(err)
		}
		return &core.Command{
			Kind:       core.CommandJoin,
			Room:       join.RoomID,
			User:       core.Participant{ID: join.User.ID, Name: join.User.Name},
			Password:   join.Password,
			InviteCode: join.InviteCode,
		}, nil
	case proto.InboundTypeLeave:
		var leave proto.LeaveData
		if err := proto.Decode(inbound.Data, &leave); err != nil {
			return nil, badRequest(err)
		}
		return &core.Command{
			Kind:   core.CommandLeave,
			Room:   leave.RoomID,
			UserID: leave.UserID,
		}, nil
	case proto.InboundTypeCreateRoom:
		var create proto.CreateRoomData
		if err := proto.Decode(inbound.Data, &create); err != nil {
			return nil, badRequest(err)
		}
		return &core.Command{
			Kind: core.CommandCreateRoom,
			Room: create.RoomID,
			NewRoom: core.RoomSpec{
				ID:         create.RoomID,
				Name:       create.Name,
				CreatedBy:  create.CreatedBy,
				CreatedAt:  create.CreatedAt,
				Password:   create.Password,
				InviteCode: create.InviteCode,
			},
		}, nil
	case proto.InboundTypeAudio:
		var audio proto.AudioData
		if err := proto.Decode(inbound.Data, &audio); err != nil {
			return nil, badRequest(err)
		}
		return &core.Command{
			Kind: core.CommandAudio,
			Room: audio.Room,
			Audio: core.AudioMessage{
				Room:   audio.Room,
				Sender: audio.Sender,
				Blob:   audio.AudioBlob,
			},
		}, nil
	case proto.InboundTypeText:
		var text proto.TextData
		if err := proto.Decode(inbound.Data, &text); err != nil {
			return nil, badRequest(err)
		}
		return &core.Command{
			Kind: core.CommandText,
			Room: text.RoomID,
			Text: core.TextMessage{
				Room:   text.RoomID,
				Fields: inbound.Data,
			},
		}, nil
	case proto.InboundTypeKick:
		var kick proto.KickData
		if err := proto.Decode(inbound.Data, &kick); err != nil {
			return nil, badRequest(err)
		}
		return &core.Command{
			Kind:         core.CommandKick,
			Room:         kick.RoomID,
			TargetUserID: kick.TargetUserID,
			ByUserID:     kick.ByUserID,
		}, nil
	default:
		return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "unknown message type"}
	}
}

func badRequest(err error) *proto.Error {
	return &proto.Error{Code: core.ErrCodeBadRequest, Msg: err.Error()}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRooms:
		return proto.Outbound{
			Type: proto.OutboundTypeRooms,
			Data: lo.Map(event.Rooms, func(r core.RoomSummary, _ int) proto.RoomSummary {
				return roomSummary(r)
			}),
		}
	case core.EventParticipants:
		return proto.Outbound{
			Type: proto.OutboundTypeParticipants,
			Room: event.Room,
			Data: participants(event.Participants),
		}
	case core.EventHistory:
		return proto.Outbound{
			Type: proto.OutboundTypeHistory,
			Room: event.Room,
			Data: lo.Map(event.History, func(m core.AudioMessage, _ int) proto.EventAudio {
				return audioMessage(m)
			}),
		}
	case core.EventAudio:
		if event.Audio == nil {
			break
		}
		return proto.Outbound{
			Type: proto.OutboundTypeAudio,
			Room: event.Room,
			Data: audioMessage(*event.Audio),
		}
	case core.EventText:
		if event.Text == nil {
			break
		}
		return proto.Outbound{
			Type: proto.OutboundTypeText,
			Room: event.Room,
			Data: textMessage(*event.Text),
		}
	case core.EventJoinError:
		msg := "join refused"
		if event.Error != nil {
			msg = event.Error.Message
		}
		return proto.Outbound{
			Type: proto.OutboundTypeJoinError,
			Room: event.Room,
			Data: proto.EventJoinError{Message: msg},
		}
	case core.EventKicked:
		return proto.Outbound{
			Type: proto.OutboundTypeKicked,
			Room: event.Room,
			Data: proto.EventKicked{RoomID: event.Room},
		}
	}
	return proto.Outbound{
		Type:  proto.OutboundTypeError,
		Error: &proto.Error{Code: "unknown", Msg: "unknown event"},
	}
}

func participants(list []core.Participant) []proto.Participant {
	return lo.Map(list, func(p core.Participant, _ int) proto.Participant {
		return proto.Participant{ID: p.ID, Name: p.Name}
	})
}

func roomSummary(r core.RoomSummary) proto.RoomSummary {
	return proto.RoomSummary{
		ID:            r.ID,
		Name:          r.Name,
		Participants:  participants(r.Participants),
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		HasPassword:   r.HasPassword,
		HasInviteCode: r.HasInviteCode,
		InviteLink:    r.InviteLink,
	}
}

func audioMessage(m core.AudioMessage) proto.EventAudio {
	return proto.EventAudio{
		ID:        m.ID,
		Room:      m.Room,
		AudioBlob: m.Blob,
		Sender:    m.Sender,
		SentAt:    formatSentAt(m.SentAt),
	}
}

// textMessage relays the client's fields with the server's id and sentAt
// laid over them.
func textMessage(m core.TextMessage) map[string]json.RawMessage {
	fields := map[string]json.RawMessage{}
	if len(m.Fields) > 0 {
		// Fields passed proto.Decode into a struct, so it is a JSON object.
		if err := json.Unmarshal(m.Fields, &fields); err != nil {
			fields = map[string]json.RawMessage{}
		}
	}
	fields["id"] = mustRaw(m.ID)
	fields["sentAt"] = mustRaw(formatSentAt(m.SentAt))
	if _, ok := fields["roomId"]; !ok {
		fields["roomId"] = mustRaw(m.Room)
	}
	return fields
}

func formatSentAt(t time.Time) string {
	return t.UTC().Format(sentAtLayout)
}

func mustRaw(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
