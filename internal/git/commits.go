package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	gserrors "gitshell.dev/gitshell/internal/errors"
)

// Wire format for the commit query. Fields are joined by the ASCII unit
// separator (0x1f) and each record is terminated by the record separator
// (0x1e). Neither byte can occur in hashes, names, emails, strict-ISO
// dates, or the single-line subject (%s strips newlines), so free-form
// subject text needs no escaping. This pairing is a protocol contract
// between logCommand and parseLog: change one and you must change both.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"

	// hash, parents, author name/email/date, committer name/email/date, subject
	logFormat = "%H%x1f%P%x1f%an%x1f%ae%x1f%aI%x1f%cn%x1f%ce%x1f%cI%x1f%s%x1e"

	logFieldCount = 9
)

// Signature identifies who authored or committed a change and when.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Commit is one record of the commit log, in the order git reports them
// (most recent first unless the revision range says otherwise).
type Commit struct {
	Hash      string
	Parents   []string
	Author    Signature
	Committer Signature
	Subject   string
}

// IsMerge reports whether the commit has more than one parent.
func (c *Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// Commits returns the commits reachable through revisionRange, which is
// passed to git log verbatim (e.g. "HEAD^..HEAD", "main..feature"). An
// empty range means the full history from the current position.
//
// A repository with no commits yet yields an empty slice; an invalid
// revision range surfaces git's own failure as a CommandError.
func (r *Repository) Commits(ctx context.Context, revisionRange string) ([]Commit, error) {
	command := "log"
	if revisionRange != "" {
		command += " " + revisionRange
	}
	command += " --pretty=tformat:" + logFormat

	result, err := r.Run(ctx, command)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		// A freshly initialized repository has no HEAD to walk; that is an
		// empty history, not a failed query. The second message is what
		// older git versions print for the same condition.
		if revisionRange == "" &&
			(strings.Contains(result.Stderr, "does not have any commits yet") ||
				strings.Contains(result.Stderr, "bad default revision")) {
			return []Commit{}, nil
		}
		return nil, gserrors.NewCommandError(strings.Fields(command), result.ExitCode, result.Stdout, result.Stderr)
	}

	return parseLog(result.Stdout)
}

// parseLog splits delimited git log output into Commit records. The order
// of the output is preserved; nothing is deduplicated.
func parseLog(stdout string) ([]Commit, error) {
	commits := []Commit{}
	for _, chunk := range strings.Split(stdout, recordSep) {
		// tformat terminates every record with a newline; strip only that
		// structural framing, never subject content.
		chunk = strings.Trim(chunk, "\r\n")
		if chunk == "" {
			continue
		}
		commit, err := parseLogRecord(chunk)
		if err != nil {
			return nil, err
		}
		commits = append(commits, *commit)
	}
	return commits, nil
}

func parseLogRecord(chunk string) (*Commit, error) {
	fields := strings.Split(chunk, fieldSep)
	if len(fields) != logFieldCount {
		return nil, gserrors.NewParseError(chunk, fmt.Sprintf("expected %d fields, got %d", logFieldCount, len(fields)))
	}

	hash := strings.TrimSpace(fields[0])
	if hash == "" {
		return nil, gserrors.NewParseError(chunk, "missing commit hash")
	}

	author, err := parseSignature(fields[2], fields[3], fields[4], chunk)
	if err != nil {
		return nil, err
	}
	committer, err := parseSignature(fields[5], fields[6], fields[7], chunk)
	if err != nil {
		return nil, err
	}

	return &Commit{
		Hash: hash,
		// A root commit has an empty parent list; a merge may have any
		// number of parents.
		Parents:   strings.Fields(fields[1]),
		Author:    author,
		Committer: committer,
		Subject:   fields[8],
	}, nil
}

func parseSignature(name, email, date, chunk string) (Signature, error) {
	when, err := time.Parse(time.RFC3339, strings.TrimSpace(date))
	if err != nil {
		return Signature{}, gserrors.NewParseError(chunk, fmt.Sprintf("bad date %q", date))
	}
	return Signature{Name: name, Email: email, When: when}, nil
}
