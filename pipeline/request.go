package pipeline

type Request struct {
	Text string `json:"text"`
	Tid  string `json:"tid"`
}

// Pipeline runs a whole document through the tagging stages and delivers
// the serialized response on the returned channel.
type Pipeline func(request Request) <-chan string
