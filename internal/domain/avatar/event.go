package avatar

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire names of the events posted by the avatar creator frame.
const (
	EventUserSet        = "v1.user.set"
	EventUserAuthorized = "v1.user.authorized"
	EventAvatarExported = "v1.avatar.exported"
	EventAssetUnlock    = "v1.asset.unlock"
)

var (
	// ErrMalformedEvent is returned when a message is not a valid event envelope.
	ErrMalformedEvent = errors.New("malformed web event")
	// ErrUnknownEvent matches any *UnknownEventError.
	ErrUnknownEvent = errors.New("unknown web event")
)

// UnknownEventError reports an envelope whose event name is outside the known set.
type UnknownEventError struct {
	Name string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown web event %q", e.Name)
}

// Is lets errors.Is(err, ErrUnknownEvent) match.
func (e *UnknownEventError) Is(target error) bool {
	return target == ErrUnknownEvent
}

// WebEvent is a decoded message from the hosted page. The set of
// implementations is closed to this package.
type WebEvent interface {
	EventName() string
	webEvent()
}

// UserSet is sent once the page has a user, anonymous or not.
type UserSet struct {
	ID string `json:"id"`
}

// UserAuthorized is sent after the user logged in.
type UserAuthorized struct {
	UserID string `json:"userId"`
}

// AvatarExported carries the URL of the exported .glb model.
type AvatarExported struct {
	URL string `json:"url"`
}

// AssetUnlocked is sent when the user unlocks an asset.
type AssetUnlocked struct {
	Asset AssetRecord `json:"asset"`
}

// AssetRecord describes an unlocked asset. Raw keeps the payload as received.
type AssetRecord struct {
	AssetID string          `json:"assetId"`
	UserID  string          `json:"userId"`
	Raw     json.RawMessage `json:"-"`
}

func (UserSet) EventName() string        { return EventUserSet }
func (UserAuthorized) EventName() string { return EventUserAuthorized }
func (AvatarExported) EventName() string { return EventAvatarExported }
func (AssetUnlocked) EventName() string  { return EventAssetUnlock }

func (UserSet) webEvent()        {}
func (UserAuthorized) webEvent() {}
func (AvatarExported) webEvent() {}
func (AssetUnlocked) webEvent()  {}

// Envelope is the JSON shape posted by the frame.
type Envelope struct {
	Source    string          `json:"source,omitempty"`
	EventName string          `json:"eventName"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type idPayload struct {
	ID string `json:"id"`
}

// userPayload accepts both spellings the frame has used for the user id.
type userPayload struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}

func (p userPayload) userID() string {
	if p.UserID != "" {
		return p.UserID
	}
	return p.ID
}

type urlPayload struct {
	URL string `json:"url"`
}

// Decode parses raw into a WebEvent. The discriminator is read first and
// the data payload is decoded according to it.
func Decode(raw []byte) (WebEvent, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if env.EventName == "" {
		return nil, fmt.Errorf("%w: missing eventName", ErrMalformedEvent)
	}

	switch env.EventName {
	case EventUserSet:
		var p idPayload
		if err := decodeData(env, &p); err != nil {
			return nil, err
		}
		return UserSet{ID: p.ID}, nil
	case EventUserAuthorized:
		var p userPayload
		if err := decodeData(env, &p); err != nil {
			return nil, err
		}
		return UserAuthorized{UserID: p.userID()}, nil
	case EventAvatarExported:
		var p urlPayload
		if err := decodeData(env, &p); err != nil {
			return nil, err
		}
		return AvatarExported{URL: p.URL}, nil
	case EventAssetUnlock:
		var rec AssetRecord
		if err := decodeData(env, &rec); err != nil {
			return nil, err
		}
		rec.Raw = append(json.RawMessage(nil), env.Data...)
		return AssetUnlocked{Asset: rec}, nil
	default:
		return nil, &UnknownEventError{Name: env.EventName}
	}
}

// DecodeString is Decode for messages delivered as strings by the browser.
func DecodeString(raw string) (WebEvent, error) {
	return Decode([]byte(raw))
}

func decodeData(env Envelope, dst any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("%w: %s data: %w", ErrMalformedEvent, env.EventName, err)
	}
	return nil
}
