package services

import (
	"math/rand/v2"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
)

// Limits for generated requests.
const (
	minQuantity = 1
	maxQuantity = 3
)

// getDropoffAddresses returns the pool of dropoff addresses used for
// generated requests. All of them lie inside the service areas.
func getDropoffAddresses() []string {
	return []string{
		"三鷹市下連雀1-1-1",
		"三鷹市下連雀2-2-2",
		"三鷹市下連雀3-3-3",
		"三鷹市井の頭1-4-4",
		"三鷹市井の頭2-5-5",
		"三鷹市牟礼1-6-6",
		"三鷹市牟礼2-7-7",
		"三鷹市北野1-8-8",
		"三鷹市北野2-9-9",
		"三鷹市新川1-10-10",
		"三鷹市新川2-11-11",
		"三鷹市中原1-12-12",
		"三鷹市中原2-13-13",
		"三鷹市深大寺1-14-14",
		"三鷹市深大寺2-15-15",
		"武蔵野市吉祥寺本町1-1-1",
		"武蔵野市吉祥寺本町2-2-2",
		"武蔵野市吉祥寺南町1-3-3",
		"武蔵野市吉祥寺南町2-4-4",
		"武蔵野市中町1-5-5",
		"武蔵野市中町2-6-6",
		"武蔵野市御殿山1-7-7",
		"武蔵野市御殿山2-8-8",
		"武蔵野市桜堤1-9-9",
		"武蔵野市桜堤2-10-10",
		"武蔵野市境1-11-11",
		"武蔵野市境2-12-12",
		"武蔵野市境南町1-13-13",
		"武蔵野市境南町2-14-14",
		"武蔵野市関前1-15-15",
	}
}

// RequestGenerator is a domain service producing synthetic delivery requests
// for the intake job. Each generated request gets a random dropoff address
// from the service areas and a random quantity between 1 and 3.
type RequestGenerator struct {
	rnd *rand.Rand
}

// NewRequestGenerator creates a generator with its own random source.
func NewRequestGenerator() RequestGenerator {
	return RequestGenerator{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededRequestGenerator creates a generator with a fixed seed.
// Used in tests to get reproducible output.
func NewSeededRequestGenerator(seed uint64) RequestGenerator {
	return RequestGenerator{
		rnd: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Generate produces one new pending request with orderedAt set to now.
func (g RequestGenerator) Generate(now time.Time) (*request.DeliveryRequest, error) {
	addresses := getDropoffAddresses()
	dropoff, err := kernel.NewAddress(addresses[g.rnd.IntN(len(addresses))])
	if err != nil {
		return nil, err
	}

	quantity := minQuantity + g.rnd.IntN(maxQuantity-minQuantity+1)

	return request.NewDeliveryRequest(dropoff, quantity, now)
}
