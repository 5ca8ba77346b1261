package probe

import (
	"context"
	"net"
	"time"
)

// TCP returns a probe that tests whether a raw TCP connection to addr can
// be established within the timeout. A completed handshake scores full
// health; a refusal is an explicit block; silence is a timeout.
func TCP(addr string, timeout time.Duration) Func {
	return func(ctx context.Context) int {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return connScore(err)
		}
		conn.Close()
		return ScoreGood
	}
}

// UDP returns a probe that sends a minimal DNS query to addr over UDP and
// waits for any response. UDP is connectionless, so a write alone proves
// nothing; only a reply (or an ICMP rejection surfaced as a read error)
// tells us whether the path is open.
func UDP(addr string, timeout time.Duration) Func {
	return func(ctx context.Context) int {
		deadline := time.Now().Add(timeout)
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}

		conn, err := net.DialTimeout("udp", addr, timeout)
		if err != nil {
			return connScore(err)
		}
		defer conn.Close()

		if err := conn.SetDeadline(deadline); err != nil {
			return ScoreBlocked
		}

		if _, err := conn.Write(dnsQuery); err != nil {
			return connScore(err)
		}

		buf := make([]byte, 512)
		if _, err := conn.Read(buf); err != nil {
			return connScore(err)
		}
		return ScoreGood
	}
}

// dnsQuery is a static DNS A query for "google.com" (header with one
// question, recursion desired, transaction id 0x4841).
var dnsQuery = []byte{
	0x48, 0x41, // id
	0x01, 0x00, // flags: standard query, RD
	0x00, 0x01, // 1 question
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // no answer/authority/additional
	0x06, 'g', 'o', 'o', 'g', 'l', 'e',
	0x03, 'c', 'o', 'm',
	0x00,       // root label
	0x00, 0x01, // type A
	0x00, 0x01, // class IN
}
