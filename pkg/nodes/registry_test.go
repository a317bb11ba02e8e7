package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLsofPorts(t *testing.T) {
	out := `COMMAND    PID USER   FD   TYPE DEVICE SIZE/OFF NODE NAME
opencode  1234 dev    7u  IPv4 123456      0t0  TCP 127.0.0.1:4096 (LISTEN)
opencode  1234 dev    8u  IPv6 123457      0t0  TCP [::1]:4096 (LISTEN)
opencode  5678 dev    7u  IPv4 123458      0t0  TCP *:4097 (LISTEN)
`

	ports := parseLsofPorts(out)
	assert.Equal(t, []int{4096, 4097}, ports)
}

func TestParseLsofPortsIgnoresNonListenLines(t *testing.T) {
	out := `COMMAND    PID USER   FD   TYPE DEVICE SIZE/OFF NODE NAME
opencode  1234 dev    9u  IPv4 123459      0t0  TCP 127.0.0.1:51044->127.0.0.1:5432 (ESTABLISHED)
`

	assert.Empty(t, parseLsofPorts(out))
}

func TestParseLsofPortsEmpty(t *testing.T) {
	assert.Empty(t, parseLsofPorts(""))
}

func TestParseLsofPortsBoundsCheck(t *testing.T) {
	out := `opencode 1 dev 1u IPv4 1 0t0 TCP 127.0.0.1:99999 (LISTEN)
opencode 1 dev 2u IPv4 1 0t0 TCP 127.0.0.1:0 (LISTEN)
opencode 1 dev 3u IPv4 1 0t0 TCP 127.0.0.1:8080 (LISTEN)`

	assert.Equal(t, []int{8080}, parseLsofPorts(out))
}
