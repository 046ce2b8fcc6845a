package shell

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type response struct {
	OK    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Shell) render(data any, err error) {
	if s.output == "json" {
		s.renderJSON(data, err)
		return
	}

	if err != nil {
		fmt.Fprintf(s.out, "error: %s\n", strings.ReplaceAll(err.Error(), "\n", "\n  "))
		return
	}
	lines, ok := data.([]string)
	if !ok {
		fmt.Fprintln(s.out, "ok")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) renderJSON(data any, err error) {
	resp := response{OK: err == nil, Data: data}
	if err != nil {
		resp.Data = nil
		resp.Error = &errorBody{Code: errorCode(err), Message: err.Error()}
	}
	if encErr := json.NewEncoder(s.out).Encode(resp); encErr != nil {
		s.logger.Printf("render error=%v", encErr)
	}
}
