package bank

// Intro is the narrative shown before the first question of a new player.
const Intro = `Deep beneath the surface web there are whispers of a hidden subnet:
the Phantom Ledger. Its first architects left encrypted puzzles behind,
each cipher a fragment of old digital wisdom.

The puzzles harden as you climb the four circles of the Ledger:
Initiate, Acolyte, Adept and Master. Answer quickly and the Ledger
pays more. Answer wrongly and it takes a life.

The first cipher awaits...`

// ClosingCipher is revealed once all twenty ciphers are solved.
const ClosingCipher = `+-----------------------------------------------------------+
|                    THE PHANTOM LEDGER                     |
|                      FINAL CIPHER                         |
+-----------------------------------------------------------+
|  01000011 01101111 01101110 01100111 01110010 01100001     |
|  01110100 01110101 01101100 01100001 01110100 01101001     |
|  01101111 01101110 01110011                                |
|                                                           |
|  The binary above holds your final message.               |
|  Decode it to finish the journey.                         |
+-----------------------------------------------------------+`

// Rank names the standing earned by a session score.
func Rank(score int) string {
	switch {
	case score >= 350:
		return "PHANTOM MASTER"
	case score >= 300:
		return "CIPHER ADEPT"
	case score >= 200:
		return "CODE BREAKER"
	}
	return "DIGITAL SEEKER"
}
