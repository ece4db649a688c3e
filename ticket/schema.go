package ticket

// FieldSchema maps semantic ticket fields to their positions in the raw
// pipe-delimited record. The mapping is known in advance and versioned;
// when the upstream shifts a column, add a new schema instead of editing
// decode logic.
type FieldSchema struct {
	Version   string
	TrainNo   int
	TrainCode int
	FromCode  int
	ToCode    int
	Depart    int
	Arrive    int
	Duration  int
	CanBuy    int
	Date      int
	Seats     map[SeatClass]int
}

// LeftTicketV1 is the current left-ticket query result layout.
func LeftTicketV1() FieldSchema {
	return FieldSchema{
		Version:   "leftTicket-v1",
		TrainNo:   2,
		TrainCode: 3,
		FromCode:  6,
		ToCode:    7,
		Depart:    8,
		Arrive:    9,
		Duration:  10,
		CanBuy:    11,
		Date:      13,
		Seats: map[SeatClass]int{
			SeatSoftSleeper: 23,
			SeatStanding:    26,
			SeatHardSleeper: 28,
			SeatHardSeat:    29,
			SeatSecond:      30,
			SeatFirst:       31,
			SeatBusiness:    32,
		},
	}
}
