package http

import (
	"encoding/json"

	"github.com/Kamzyled/Love-moyosola/internal/core"
	"github.com/Kamzyled/Love-moyosola/internal/proto"
)

// inboundToCommand translates a wire message into a core command. Semantic
// validation (names, counts, phases) lives in the hub; the mapper only
// rejects messages it cannot shape.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateGame:
		var data proto.CreateGameData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:          core.CommandCreateGame,
			PlayerName:    data.PlayerName,
			Category:      data.Category,
			QuestionCount: data.QuestionCount,
		}, nil, nil
	case proto.InboundTypeJoinGame:
		var data proto.JoinGameData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:       core.CommandJoinGame,
			Code:       data.Code,
			PlayerName: data.PlayerName,
		}, nil, nil
	case proto.InboundTypeHostAnswer:
		var data proto.HostAnswerData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandHostAnswer,
			Code:   data.Code,
			Answer: data.Answer,
		}, nil, nil
	case proto.InboundTypeGuestGuess:
		var data proto.GuestGuessData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:  core.CommandGuestGuess,
			Code:  data.Code,
			Guess: data.Guess,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventGameCreated:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameGameCreated,
			Data: proto.EventGameCreated{
				Code:          event.Code,
				ParticipantID: event.ParticipantID,
			},
		}
	case core.EventGameJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameGameJoined,
			Data: proto.EventGameJoined{
				Code:          event.Code,
				ParticipantID: event.ParticipantID,
			},
		}
	case core.EventGuestJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameGuestJoined,
			Data:  proto.EventGuestJoined{GuestName: event.GuestName},
		}
	case core.EventNextQuestion:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameNextQuestion,
			Data: proto.EventNextQuestion{
				Question:       event.Question,
				QuestionIndex:  event.QuestionIndex,
				TotalQuestions: event.TotalQuestions,
			},
		}
	case core.EventHostAnswered:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameHostAnswered,
		}
	case core.EventRoundResult:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameRoundResult,
			Data: proto.EventRoundResult{
				HostAnswer: event.HostAnswer,
				GuestGuess: event.GuestGuess,
				IsCorrect:  event.Correct,
				Scores:     scoresFromCore(event.Scores),
			},
		}
	case core.EventGameOver:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameGameOver,
			Data:  proto.EventGameOver{Scores: scoresFromCore(event.Scores)},
		}
	case core.EventHostDisconnected:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameHostDisconnected,
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func scoresFromCore(scores []core.ScoreEntry) []proto.ScoreEntry {
	out := make([]proto.ScoreEntry, 0, len(scores))
	for _, s := range scores {
		out = append(out, proto.ScoreEntry{ID: s.ID, Name: s.Name, Score: s.Score})
	}
	return out
}
