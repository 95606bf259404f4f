package bank

import "github.com/abhisek/phantomledger/internal/tier"

// triviaQuestions is the compiled-in multiple-choice catalog.
var triviaQuestions = []Question{
	// Initiate
	{ID: "t1-token", Tier: tier.T1, Prompt: "Which token pays for gas on Aptos?", Options: []string{"ETH", "APT", "SOL", "MOVE"}, CorrectIndex: 1, MaxTime: 30},
	{ID: "t1-wallet", Tier: tier.T1, Prompt: "Which wallet is named after an ancient city carved in stone?", Options: []string{"Petra", "Phantom", "Pontem", "Martian"}, CorrectIndex: 0, MaxTime: 30},
	{ID: "t1-lang", Tier: tier.T1, Prompt: "Which language is used to write Aptos smart contracts?", Options: []string{"Solidity", "Rust", "Move", "Cairo"}, CorrectIndex: 2, MaxTime: 30},
	{ID: "t1-year", Tier: tier.T1, Prompt: "In what year did Aptos mainnet launch?", Options: []string{"2020", "2021", "2022", "2023"}, CorrectIndex: 2, MaxTime: 30},
	{ID: "t1-unit", Tier: tier.T1, Prompt: "What is the smallest unit of APT called?", Options: []string{"Octas", "Wei", "Lamports", "Satoshi"}, CorrectIndex: 0, MaxTime: 30},
	{ID: "t1-names", Tier: tier.T1, Prompt: "What does ANS stand for?", Options: []string{"Aptos Node Set", "Aptos Name Service", "Account Number System", "Async Network Sync"}, CorrectIndex: 1, MaxTime: 30},

	// Acolyte
	{ID: "t2-oracle", Tier: tier.T2, Prompt: "Which oracle is named after an ancient Greek oracle site?", Options: []string{"Chainlink", "Switchboard", "Pyth", "Band"}, CorrectIndex: 2, MaxTime: 45},
	{ID: "t2-bridge", Tier: tier.T2, Prompt: "Which protocol provides omnichain messaging for Aptos?", Options: []string{"LayerZero", "Axelar", "IBC", "Hyperlane"}, CorrectIndex: 0, MaxTime: 45},
	{ID: "t2-orderbook", Tier: tier.T2, Prompt: "Which protocol runs an on-chain order book on Aptos?", Options: []string{"Thala", "Econia", "Liquidswap", "Aries"}, CorrectIndex: 1, MaxTime: 45},
	{ID: "t2-reentrancy", Tier: tier.T2, Prompt: "Which Move concept prevents reentrancy by design?", Options: []string{"Modifiers", "Resources", "Events", "Scripts"}, CorrectIndex: 1, MaxTime: 45},
	{ID: "t2-keyless", Tier: tier.T2, Prompt: "Which feature lets users sign in without managing a private key?", Options: []string{"Multisig", "Keyless accounts", "Session keys", "Social recovery"}, CorrectIndex: 1, MaxTime: 45},
	{ID: "t2-testnet", Tier: tier.T2, Prompt: "What was the incentivized testnet abbreviated as?", Options: []string{"AIT", "ATN", "ITA", "APT-T"}, CorrectIndex: 0, MaxTime: 45},

	// Adept
	{ID: "t3-sig", Tier: tier.T3, Prompt: "Which signature scheme do Aptos accounts use by default?", Options: []string{"secp256k1", "BLS12-381", "Ed25519", "Schnorr"}, CorrectIndex: 2, MaxTime: 60},
	{ID: "t3-byzantine", Tier: tier.T3, Prompt: "What fraction of validators can be Byzantine under BFT safety?", Options: []string{"Less than 1/2", "Less than 1/3", "Less than 1/4", "Less than 2/3"}, CorrectIndex: 1, MaxTime: 60},
	{ID: "t3-table", Tier: tier.T3, Prompt: "Which Move type plays the role of a Solidity mapping?", Options: []string{"vector", "struct", "Table", "Option"}, CorrectIndex: 2, MaxTime: 60},
	{ID: "t3-finality", Tier: tier.T3, Prompt: "What kind of finality does Aptos provide?", Options: []string{"Probabilistic", "Instant", "Delayed", "Optimistic"}, CorrectIndex: 1, MaxTime: 60},
	{ID: "t3-state", Tier: tier.T3, Prompt: "Which structure authenticates Aptos state?", Options: []string{"Merkle tree", "Bloom filter", "Skip list", "Trie of tries"}, CorrectIndex: 0, MaxTime: 60},
	{ID: "t3-upgrade", Tier: tier.T3, Prompt: "What must a Move module upgrade preserve?", Options: []string{"Gas price", "Compatibility", "Module address", "Signer count"}, CorrectIndex: 1, MaxTime: 60},

	// Master
	{ID: "t4-stm", Tier: tier.T4, Prompt: "Block-STM is built on which concurrency technique?", Options: []string{"Two-phase locking", "Software transactional memory", "Actor model", "MapReduce"}, CorrectIndex: 1, MaxTime: 90},
	{ID: "t4-hash", Tier: tier.T4, Prompt: "Which hash function backs Aptos Merkle proofs?", Options: []string{"SHA3-256", "Keccak-512", "Blake2b", "MD5"}, CorrectIndex: 0, MaxTime: 90},
	{ID: "t4-bft", Tier: tier.T4, Prompt: "AptosBFT descends from which protocol family?", Options: []string{"Tendermint", "HotStuff", "Avalanche", "Nakamoto"}, CorrectIndex: 1, MaxTime: 90},
	{ID: "t4-prover", Tier: tier.T4, Prompt: "Which verification backend does the Move Prover target?", Options: []string{"Coq", "Boogie", "Isabelle", "TLA+"}, CorrectIndex: 1, MaxTime: 90},
	{ID: "t4-capability", Tier: tier.T4, Prompt: "Which Move pattern grants fine-grained access control?", Options: []string{"Capabilities", "Inheritance", "Reflection", "Delegatecall"}, CorrectIndex: 0, MaxTime: 90},
	{ID: "t4-assumption", Tier: tier.T4, Prompt: "Signature security rests on the hardness of which problem?", Options: []string{"Integer sorting", "Discrete logarithm", "Graph coloring", "Halting"}, CorrectIndex: 1, MaxTime: 90},
}
