package flags

import (
	"os"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Flags
		ok   bool
	}{
		{
			name: "no flags keeps saved settings",
			args: []string{"snaked"},
			ok:   false,
		},
		{
			name: "mode and mute",
			args: []string{"snaked", "-mode", "frantic", "-mute"},
			want: Flags{Mode: "frantic", Mute: true},
			ok:   true,
		},
		{
			name: "mode is case-insensitive",
			args: []string{"snaked", "-mode", "Chill"},
			want: Flags{Mode: "chill"},
			ok:   true,
		},
		{
			name: "night option",
			args: []string{"snaked", "-night", "real"},
			want: Flags{Mode: "classic", Night: "real"},
			ok:   true,
		},
		{
			name: "reset",
			args: []string{"snaked", "-reset"},
			want: Flags{Mode: "classic", Reset: true},
			ok:   true,
		},
	}

	savedArgs := os.Args
	defer func() { os.Args = savedArgs }()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			os.Args = tc.args
			got, ok := Parse()
			if ok != tc.ok {
				t.Fatalf("Parse() ok = %v; want %v", ok, tc.ok)
			}
			if !ok {
				if got != nil {
					t.Fatalf("Parse() = %+v; want nil", got)
				}
				return
			}
			if *got != tc.want {
				t.Errorf("Parse() = %+v; want %+v", *got, tc.want)
			}
		})
	}
}
