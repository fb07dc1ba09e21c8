package wire

import "google.golang.org/protobuf/encoding/protowire"

// Empty is used by methods that take or return nothing.
type Empty struct{}

func (*Empty) MarshalWire() []byte { return nil }

func (*Empty) UnmarshalWire(b []byte) error {
	return decodeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type PingResponse struct {
	Status string
}

func (m *PingResponse) MarshalWire() []byte {
	var e encoder
	e.string(1, m.Status)
	return e.b
}

func (m *PingResponse) UnmarshalWire(b []byte) error {
	*m = PingResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return readString(typ, b, &m.Status)
		}
		return 0, nil
	})
}

type RegisterUserRequest struct {
	Username string
	Salt     []byte
	Verifier []byte
}

func (m *RegisterUserRequest) MarshalWire() []byte {
	var e encoder
	e.string(1, m.Username)
	e.bytes(2, m.Salt)
	e.bytes(3, m.Verifier)
	return e.b
}

func (m *RegisterUserRequest) UnmarshalWire(b []byte) error {
	*m = RegisterUserRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, b, &m.Username)
		case 2:
			return readBytes(typ, b, &m.Salt)
		case 3:
			return readBytes(typ, b, &m.Verifier)
		}
		return 0, nil
	})
}

type RegisterUserResponse struct {
	UserID string
}

func (m *RegisterUserResponse) MarshalWire() []byte {
	var e encoder
	e.string(1, m.UserID)
	return e.b
}

func (m *RegisterUserResponse) UnmarshalWire(b []byte) error {
	*m = RegisterUserResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return readString(typ, b, &m.UserID)
		}
		return 0, nil
	})
}

type GetSaltRequest struct {
	Username string
}

func (m *GetSaltRequest) MarshalWire() []byte {
	var e encoder
	e.string(1, m.Username)
	return e.b
}

func (m *GetSaltRequest) UnmarshalWire(b []byte) error {
	*m = GetSaltRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return readString(typ, b, &m.Username)
		}
		return 0, nil
	})
}

type GetSaltResponse struct {
	Salt []byte
}

func (m *GetSaltResponse) MarshalWire() []byte {
	var e encoder
	e.bytes(1, m.Salt)
	return e.b
}

func (m *GetSaltResponse) UnmarshalWire(b []byte) error {
	*m = GetSaltResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return readBytes(typ, b, &m.Salt)
		}
		return 0, nil
	})
}

type LoginRequest struct {
	Username          string
	VerifierCandidate []byte
}

func (m *LoginRequest) MarshalWire() []byte {
	var e encoder
	e.string(1, m.Username)
	e.bytes(2, m.VerifierCandidate)
	return e.b
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	*m = LoginRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, b, &m.Username)
		case 2:
			return readBytes(typ, b, &m.VerifierCandidate)
		}
		return 0, nil
	})
}

// TokenResponse answers both Login and RefreshToken.
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	UserID       string
}

func (m *TokenResponse) MarshalWire() []byte {
	var e encoder
	e.string(1, m.AccessToken)
	e.string(2, m.RefreshToken)
	e.string(3, m.UserID)
	return e.b
}

func (m *TokenResponse) UnmarshalWire(b []byte) error {
	*m = TokenResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, b, &m.AccessToken)
		case 2:
			return readString(typ, b, &m.RefreshToken)
		case 3:
			return readString(typ, b, &m.UserID)
		}
		return 0, nil
	})
}

// RefreshTokenRequest is sent by RefreshToken and Logout.
type RefreshTokenRequest struct {
	RefreshToken string
}

func (m *RefreshTokenRequest) MarshalWire() []byte {
	var e encoder
	e.string(1, m.RefreshToken)
	return e.b
}

func (m *RefreshTokenRequest) UnmarshalWire(b []byte) error {
	*m = RefreshTokenRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return readString(typ, b, &m.RefreshToken)
		}
		return 0, nil
	})
}

type Entry struct {
	ID            uint64
	Author        string
	Title         string
	Content       string
	Category      string
	MoodRating    int64
	IsPublic      bool
	CreatedAt     int64
	Appreciations uint64
}

func (m *Entry) MarshalWire() []byte {
	var e encoder
	e.uint(1, m.ID)
	e.string(2, m.Author)
	e.string(3, m.Title)
	e.string(4, m.Content)
	e.string(5, m.Category)
	e.int(6, m.MoodRating)
	e.bool(7, m.IsPublic)
	e.int(8, m.CreatedAt)
	e.uint(9, m.Appreciations)
	return e.b
}

func (m *Entry) UnmarshalWire(b []byte) error {
	*m = Entry{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readUint(typ, b, &m.ID)
		case 2:
			return readString(typ, b, &m.Author)
		case 3:
			return readString(typ, b, &m.Title)
		case 4:
			return readString(typ, b, &m.Content)
		case 5:
			return readString(typ, b, &m.Category)
		case 6:
			return readInt(typ, b, &m.MoodRating)
		case 7:
			return readBool(typ, b, &m.IsPublic)
		case 8:
			return readInt(typ, b, &m.CreatedAt)
		case 9:
			return readUint(typ, b, &m.Appreciations)
		}
		return 0, nil
	})
}

type EntryList struct {
	Entries []*Entry
}

func (m *EntryList) MarshalWire() []byte {
	var e encoder
	for _, x := range m.Entries {
		e.message(1, x)
	}
	return e.b
}

func (m *EntryList) UnmarshalWire(b []byte) error {
	*m = EntryList{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			x := new(Entry)
			n, err := readMessage(typ, b, x)
			if err != nil {
				return 0, err
			}
			m.Entries = append(m.Entries, x)
			return n, nil
		}
		return 0, nil
	})
}

type CreateEntryRequest struct {
	Title      string
	Content    string
	Category   string
	MoodRating int64
	IsPublic   bool
}

func (m *CreateEntryRequest) MarshalWire() []byte {
	var e encoder
	e.string(1, m.Title)
	e.string(2, m.Content)
	e.string(3, m.Category)
	e.int(4, m.MoodRating)
	e.bool(5, m.IsPublic)
	return e.b
}

func (m *CreateEntryRequest) UnmarshalWire(b []byte) error {
	*m = CreateEntryRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, b, &m.Title)
		case 2:
			return readString(typ, b, &m.Content)
		case 3:
			return readString(typ, b, &m.Category)
		case 4:
			return readInt(typ, b, &m.MoodRating)
		case 5:
			return readBool(typ, b, &m.IsPublic)
		}
		return 0, nil
	})
}

// EntryID carries a single entry id, both as a request (appreciate, delete)
// and as the CreateEntry response.
type EntryID struct {
	ID uint64
}

func (m *EntryID) MarshalWire() []byte {
	var e encoder
	e.uint(1, m.ID)
	return e.b
}

func (m *EntryID) UnmarshalWire(b []byte) error {
	*m = EntryID{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return readUint(typ, b, &m.ID)
		}
		return 0, nil
	})
}

type CategoryCount struct {
	Category string
	Count    uint64
}

func (m *CategoryCount) MarshalWire() []byte {
	var e encoder
	e.string(1, m.Category)
	e.uint(2, m.Count)
	return e.b
}

func (m *CategoryCount) UnmarshalWire(b []byte) error {
	*m = CategoryCount{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, b, &m.Category)
		case 2:
			return readUint(typ, b, &m.Count)
		}
		return 0, nil
	})
}

type UserStats struct {
	TotalEntries      uint64
	CurrentStreak     uint64
	LongestStreak     uint64
	EntriesByCategory []*CategoryCount
	AverageMood       float64
}

func (m *UserStats) MarshalWire() []byte {
	var e encoder
	e.uint(1, m.TotalEntries)
	e.uint(2, m.CurrentStreak)
	e.uint(3, m.LongestStreak)
	for _, c := range m.EntriesByCategory {
		e.message(4, c)
	}
	e.double(5, m.AverageMood)
	return e.b
}

func (m *UserStats) UnmarshalWire(b []byte) error {
	*m = UserStats{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readUint(typ, b, &m.TotalEntries)
		case 2:
			return readUint(typ, b, &m.CurrentStreak)
		case 3:
			return readUint(typ, b, &m.LongestStreak)
		case 4:
			c := new(CategoryCount)
			n, err := readMessage(typ, b, c)
			if err != nil {
				return 0, err
			}
			m.EntriesByCategory = append(m.EntriesByCategory, c)
			return n, nil
		case 5:
			return readDouble(typ, b, &m.AverageMood)
		}
		return 0, nil
	})
}

type SystemStats struct {
	TotalUsers         uint64
	TotalEntries       uint64
	TotalPublicEntries uint64
	TotalAppreciations uint64
}

func (m *SystemStats) MarshalWire() []byte {
	var e encoder
	e.uint(1, m.TotalUsers)
	e.uint(2, m.TotalEntries)
	e.uint(3, m.TotalPublicEntries)
	e.uint(4, m.TotalAppreciations)
	return e.b
}

func (m *SystemStats) UnmarshalWire(b []byte) error {
	*m = SystemStats{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readUint(typ, b, &m.TotalUsers)
		case 2:
			return readUint(typ, b, &m.TotalEntries)
		case 3:
			return readUint(typ, b, &m.TotalPublicEntries)
		case 4:
			return readUint(typ, b, &m.TotalAppreciations)
		}
		return 0, nil
	})
}

type ExportResponse struct {
	URL       string
	ExpiresAt int64
	Count     uint64
}

func (m *ExportResponse) MarshalWire() []byte {
	var e encoder
	e.string(1, m.URL)
	e.int(2, m.ExpiresAt)
	e.uint(3, m.Count)
	return e.b
}

func (m *ExportResponse) UnmarshalWire(b []byte) error {
	*m = ExportResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return readString(typ, b, &m.URL)
		case 2:
			return readInt(typ, b, &m.ExpiresAt)
		case 3:
			return readUint(typ, b, &m.Count)
		}
		return 0, nil
	})
}
