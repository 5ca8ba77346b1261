package probe

import (
	"context"
	"net"
	"strings"
	"time"

	sshconfig "github.com/kevinburke/ssh_config"
	"golang.org/x/crypto/ssh"
)

// SSH returns a probe that tests whether the SSH transport to target is
// open. The probe dials TCP and runs the SSH handshake up to the
// authentication step. An auth rejection still means the protocol got
// through, so it scores full health; what this probe measures is whether
// SSH traffic is passed at all, not whether we hold credentials.
//
// target may be host:port, user@host, or an alias from ~/.ssh/config.
func SSH(target string, timeout time.Duration) Func {
	user, addr := resolveSSHTarget(target)

	cfg := &ssh.ClientConfig{
		User: user,
		// Reachability probe only: we never issue commands over this
		// connection, so host key verification buys nothing here.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	return func(ctx context.Context) int {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return connScore(err)
		}
		defer conn.Close()

		if deadline, ok := ctx.Deadline(); ok {
			_ = conn.SetDeadline(deadline)
		}

		sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
		if err == nil {
			// Anonymous handshake fully accepted (rare, but possible).
			go ssh.DiscardRequests(reqs)
			_ = sshConn.Close()
			_ = chans
			return ScoreGood
		}

		if isAuthError(err) {
			// The server spoke SSH and rejected our credentials: the
			// transport itself is healthy.
			return ScoreGood
		}
		return connScore(err)
	}
}

// resolveSSHTarget turns a config value into (user, host:port). Aliases
// without an explicit host are resolved through the user's ssh_config.
func resolveSSHTarget(target string) (user, addr string) {
	user = "ham-probe"
	host := target

	if at := strings.Index(host, "@"); at >= 0 {
		user = host[:at]
		host = host[at+1:]
	}

	if strings.Contains(host, ":") {
		return user, host
	}

	// No port given: treat it as a potential ssh_config alias.
	port := sshconfig.Get(host, "Port")
	if port == "" {
		port = "22"
	}
	if u := sshconfig.Get(host, "User"); u != "" && user == "ham-probe" {
		user = u
	}
	if hostname := sshconfig.Get(host, "HostName"); hostname != "" {
		host = hostname
	}

	return user, net.JoinHostPort(host, port)
}

// isAuthError reports whether an SSH handshake error happened after the
// transport was established (i.e. at the authentication step).
func isAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unable to authenticate") ||
		strings.Contains(msg, "no supported methods") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "authentication failed")
}
