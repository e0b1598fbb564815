package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/roomrelay/internal/log"
	"github.com/vovakirdan/roomrelay/internal/proto"
)

func main() {
	logger := log.New("info", true)
	if err := run(); err != nil {
		logger.Error().Err(err).Msg("ws_smoke failed")
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	user := flag.String("user", "tester", "user id to join with")
	room := flag.String("room", "genel", "room id")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", typ, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", typ, err)
		}
		return nil
	}

	if err := send(proto.InboundTypeJoin, proto.JoinData{RoomID: *room, User: proto.User{ID: *user, Name: *user}}); err != nil {
		return err
	}
	if err := send(proto.InboundTypeText, map[string]string{"roomId": *room, "sender": *user, "text": *text}); err != nil {
		return err
	}

	for {
		var frame struct {
			Type  string          `json:"type"`
			Room  string          `json:"room"`
			Data  json.RawMessage `json:"data"`
			Error *proto.Error    `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		fmt.Printf("received type=%s room=%s\n", frame.Type, frame.Room)
		switch frame.Type {
		case proto.OutboundTypeError:
			return fmt.Errorf("server error %s: %s", frame.Error.Code, frame.Error.Msg)
		case proto.OutboundTypeJoinError:
			return fmt.Errorf("join refused: %s", frame.Data)
		case proto.OutboundTypeText:
			fmt.Printf("text message: %s\n", frame.Data)
			return nil
		}
	}
}
