// Package cli implements the batch recommendation driver. It reads a
// whitespace-separated graph description and prints the network
// structure followed by every strategy's recommendations for each user.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"sociograph/domain/recommend"
	"sociograph/domain/social"
)

// Driver runs the batch recommendation report.
type Driver struct {
	network *social.Network
	engine  *recommend.Engine
}

// NewDriver creates a driver over a fresh network.
func NewDriver() *Driver {
	network := social.NewNetwork()
	return &Driver{
		network: network,
		engine:  recommend.NewEngine(network),
	}
}

// Run reads the graph description from r and writes the report to w.
//
// Input format, all whitespace separated:
//
//	userCount maxDistance connectionCount
//	source target   (connectionCount pairs)
//
// Users are numbered 1 through userCount.
func (d *Driver) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	userCount, err := readInt(scanner)
	if err != nil {
		return fmt.Errorf("read user count: %w", err)
	}
	if userCount < 0 {
		return fmt.Errorf("user count must not be negative, got %d", userCount)
	}
	maxDistance, err := readInt(scanner)
	if err != nil {
		return fmt.Errorf("read max distance: %w", err)
	}
	if maxDistance < 1 {
		return fmt.Errorf("max distance must be positive, got %d", maxDistance)
	}

	for i := 1; i <= userCount; i++ {
		d.network.AddUser(social.UserID(i))
	}

	connectionCount, err := readInt(scanner)
	if err != nil {
		return fmt.Errorf("read connection count: %w", err)
	}
	for i := 0; i < connectionCount; i++ {
		source, err := readInt(scanner)
		if err != nil {
			return fmt.Errorf("read connection %d source: %w", i+1, err)
		}
		target, err := readInt(scanner)
		if err != nil {
			return fmt.Errorf("read connection %d target: %w", i+1, err)
		}
		d.network.AddConnection(social.UserID(source), social.UserID(target))
	}

	d.printNetwork(w)

	for i := 1; i <= userCount; i++ {
		d.printRecommendations(w, social.UserID(i), maxDistance)
	}
	return nil
}

func (d *Driver) printNetwork(w io.Writer) {
	fmt.Fprintln(w, "Social Network Structure:")
	for _, id := range d.network.UserIDs() {
		fmt.Fprintf(w, "User %d is connected to:", id)
		for _, friendID := range sortedFriends(d.network, id) {
			fmt.Fprintf(w, " %d", friendID)
		}
		fmt.Fprintln(w)
	}
}

func (d *Driver) printRecommendations(w io.Writer, target social.UserID, maxDistance int) {
	fmt.Fprintf(w, "\nFriend Recommendations for %d\n", target)

	fmt.Fprintln(w, "By Common Friends:")
	for _, rec := range d.engine.ByCommonFriends(target) {
		fmt.Fprintf(w, "User %d (Common Friends: %d)\n", rec.UserID, rec.Score)
	}

	fmt.Fprintln(w, "\nBy Network Distance:")
	for _, rec := range d.engine.ByNetworkDistance(target, maxDistance) {
		fmt.Fprintf(w, "User %d (Distance: %d)\n", rec.UserID, rec.Score)
	}

	fmt.Fprintln(w, "\nAdvanced Recommendation:")
	for _, rec := range d.engine.Weighted(target, maxDistance) {
		fmt.Fprintf(w, "User %d (Score: %d)\n", rec.UserID, rec.Score)
	}
}

func sortedFriends(network *social.Network, id social.UserID) []social.UserID {
	friends := network.Friends(id)
	ids := make([]social.UserID, 0, len(friends))
	for friendID := range friends {
		ids = append(ids, friendID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func readInt(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	value, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", scanner.Text())
	}
	return value, nil
}
