/*
Package server implements msgpack IPC for anagram searches.

The server reads a stream of msgpack maps from stdin and writes one msgpack
response per request to stdout, so a client pays the dictionary load once
and can run many searches, in any language present in the resource
directory.

# IPC

Each message carries an ID and an action. Anagram requests:

	{"id": "req_001", "a": "anagram", "p": "niche chat", "h": "chat", "lang": "fr", "l": 20}

The server responds with the ranked sentences, most words first:

	{"id": "req_001", "s": [{"t": "chat chien", "n": 2, "r": 1}, {"t": "chat niche", "n": 2, "r": 2}], "c": 2, "x": false, "v": 123, "t": 145}

"x" tells the node budget ran out, "v" is the number of search nodes and
"t" the time taken in microseconds. Sentences include the hint when one
is given.

Other actions:

	{"id": "l_001", "a": "languages"}
	{"id": "w_001", "a": "lookup", "p": "nic", "lang": "fr", "l": 10}
	{"id": "h_001", "a": "health"}

Errors use a small frame with a code: 400 bad request, 404 unknown
language, 500 failed search.

	{"id": "req_002", "e": "phrase exceeds 64 letters", "c": 400}
*/
package server

// Request is any client message, fields depend on the action
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Phrase string `msgpack:"p,omitempty"`
	Hint   string `msgpack:"h,omitempty"`
	Lang   string `msgpack:"lang,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Actions understood by the server, "" means ActionAnagram
const (
	ActionAnagram   = "anagram"
	ActionLanguages = "languages"
	ActionLookup    = "lookup"
	ActionHealth    = "health"
)

// SentenceResult - one ranked sentence
type SentenceResult struct {
	Text  string `msgpack:"t"`
	Words int    `msgpack:"n"`
	Rank  uint32 `msgpack:"r"`
}

// AnagramResponse - anagram search response
type AnagramResponse struct {
	ID        string           `msgpack:"id"`
	Sentences []SentenceResult `msgpack:"s"`
	Count     int              `msgpack:"c"`
	Truncated bool             `msgpack:"x"`
	Nodes     int64            `msgpack:"v"`
	TimeTaken int64            `msgpack:"t"`
}

// LanguagesResponse - dictionaries on disk and in memory
type LanguagesResponse struct {
	ID        string   `msgpack:"id"`
	Status    string   `msgpack:"status"`
	Languages []string `msgpack:"languages"`
	Loaded    []string `msgpack:"loaded"`
}

// LookupResponse - dictionary words for a prefix
type LookupResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"w"`
	Count int      `msgpack:"c"`
}

// StatusResponse - ready and health messages
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
