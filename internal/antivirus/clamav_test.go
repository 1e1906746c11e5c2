package antivirus

import "testing"

func TestParseReply(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    ScanResult
		wantErr bool
	}{
		{
			name:  "clean stream",
			reply: "stream: OK",
			want:  ScanResult{},
		},
		{
			name:  "infected with signature",
			reply: "stream: Eicar-Signature FOUND",
			want:  ScanResult{Infected: true, Signature: "Eicar-Signature"},
		},
		{
			name:  "infected without stream prefix",
			reply: "Win.Test.EICAR_HDB-1 FOUND",
			want:  ScanResult{Infected: true, Signature: "Win.Test.EICAR_HDB-1"},
		},
		{
			name:    "protocol error",
			reply:   "INSTREAM size limit exceeded. ERROR",
			wantErr: true,
		},
		{
			name:    "garbage",
			reply:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReply(tt.reply)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("parseReply(%q) = %+v, want %+v", tt.reply, got, tt.want)
			}
		})
	}
}
