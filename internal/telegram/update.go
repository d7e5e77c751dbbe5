package telegram

// Update is the subset of the Bot API update the command surface consumes.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	Text string `json:"text"`
	Chat Chat   `json:"chat"`
	From *From  `json:"from"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type From struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
