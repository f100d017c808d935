// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "testing"

func TestJSONRPCRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     JSONRPCRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: JSONRPCRequest{
				JSONRPCMessage: NewJSONRPCMessage(1),
				Method:         MethodMessageSend,
			},
		},
		{
			name: "wrong version",
			req: JSONRPCRequest{
				JSONRPCMessage: JSONRPCMessage{JSONRPC: "1.0", ID: 1},
				Method:         MethodMessageSend,
			},
			wantErr: true,
		},
		{
			name: "missing version",
			req: JSONRPCRequest{
				Method: MethodMessageSend,
			},
			wantErr: true,
		},
		{
			name: "empty method",
			req: JSONRPCRequest{
				JSONRPCMessage: NewJSONRPCMessage(1),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		rpcErr *JSONRPCError
		want   int
	}{
		{rpcErr: NewJSONParseError(), want: -32700},
		{rpcErr: NewInvalidRequestError(), want: -32600},
		{rpcErr: NewMethodNotFoundError(), want: -32601},
		{rpcErr: NewInvalidParamsError(), want: -32602},
		{rpcErr: NewInternalError(), want: -32603},
		{rpcErr: NewTaskNotFoundError(), want: -32001},
	}
	for _, tt := range tests {
		if tt.rpcErr.Code != tt.want {
			t.Errorf("code = %d, want %d", tt.rpcErr.Code, tt.want)
		}
		if tt.rpcErr.Message == "" {
			t.Errorf("code %d has empty message", tt.want)
		}
	}
}
