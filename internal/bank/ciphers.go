package bank

import "github.com/abhisek/phantomledger/internal/tier"

// cipherQuestions is the compiled-in free-text catalog.
var cipherQuestions = []Question{
	// Initiate
	{
		ID:      "e1",
		Tier:    tier.T1,
		Story:   "The first cipher fragment reveals ancient symbols carved into digital stone...",
		Prompt:  "What is the native token of the Aptos blockchain?",
		Answer:  "apt",
		Hint:    "It's a three-letter abbreviation",
		MaxTime: 30,
	},
	{
		ID:      "e2",
		Tier:    tier.T1,
		Story:   "Whispers in the code speak of a wallet that bears the name of stone...",
		Prompt:  "What is the most popular wallet for Aptos ecosystem?",
		Answer:  "petra",
		Hint:    "Named after an ancient city carved in stone",
		MaxTime: 30,
	},
	{
		ID:      "e3",
		Tier:    tier.T1,
		Story:   "The phantom ledger speaks of a language that flows like water...",
		Prompt:  "What programming language is used for smart contracts on Aptos?",
		Answer:  "move",
		Hint:    "It suggests motion and fluidity",
		MaxTime: 30,
	},
	{
		ID:      "e4",
		Tier:    tier.T1,
		Story:   "In the depths of the blockchain, a consensus mechanism emerges...",
		Prompt:  "What consensus mechanism does Aptos use?",
		Answer:  "proof-of-stake",
		Hint:    "Not proof-of-work, but proof of something else",
		MaxTime: 30,
	},
	{
		ID:      "e5",
		Tier:    tier.T1,
		Story:   "The genesis speaks of founders who once walked among giants...",
		Prompt:  "Aptos was founded by former employees of which company?",
		Answer:  "meta",
		Hint:    "Formerly known as Facebook",
		MaxTime: 30,
	},
	{
		ID:      "e6",
		Tier:    tier.T1,
		Story:   "The archive reveals the birth year of this phantom network...",
		Prompt:  "In what year was Aptos mainnet launched?",
		Answer:  "2022",
		Hint:    "Between 2020 and 2025",
		MaxTime: 30,
	},
	{
		ID:      "e7",
		Tier:    tier.T1,
		Story:   "The ledger whispers of a marketplace where digital treasures are traded...",
		Prompt:  "What is the primary NFT marketplace on Aptos?",
		Answer:  "topaz",
		Hint:    "Named after a precious gemstone",
		MaxTime: 30,
	},
	{
		ID:      "e8",
		Tier:    tier.T1,
		Story:   "The code reveals a bridge that spans between realms...",
		Prompt:  "What is the cross-chain bridge protocol commonly used with Aptos?",
		Answer:  "wormhole",
		Hint:    "Named after a theoretical physics concept",
		MaxTime: 30,
	},
	// Acolyte
	{
		ID:      "m1",
		Tier:    tier.T2,
		Story:   "Deeper in the phantom ledger, protocols emerge that mimic traditional finance...",
		Prompt:  "What is the leading lending protocol on Aptos?",
		Answer:  "econia",
		Hint:    "Named after an economic term",
		MaxTime: 45,
	},
	{
		ID:      "m2",
		Tier:    tier.T2,
		Story:   "The cipher speaks of a wallet that bridges the gap between browser and mobile...",
		Prompt:  "Besides Petra, what is another popular Aptos wallet?",
		Answer:  "pontem",
		Hint:    "Latin word meaning bridge",
		MaxTime: 45,
	},
	{
		ID:      "m3",
		Tier:    tier.T2,
		Story:   "In the depths of Move, a unique feature prevents common vulnerabilities...",
		Prompt:  "What Move feature prevents reentrancy attacks?",
		Answer:  "resources",
		Hint:    "A fundamental Move concept that ensures linear logic",
		MaxTime: 45,
	},
	{
		ID:      "m4",
		Tier:    tier.T2,
		Story:   "The phantom network reveals its consensus innovation...",
		Prompt:  "What is the name of Aptos' consensus algorithm?",
		Answer:  "aptosbft",
		Hint:    "Combines the network name with a consensus term",
		MaxTime: 45,
	},
	{
		ID:      "m5",
		Tier:    tier.T2,
		Story:   "The ledger speaks of parallel execution and its implementation...",
		Prompt:  "What is Aptos' parallel execution engine called?",
		Answer:  "block-smt",
		Hint:    "Combines block processing with a tree structure",
		MaxTime: 45,
	},
	{
		ID:      "m6",
		Tier:    tier.T2,
		Story:   "The cipher reveals the architecture of account abstraction...",
		Prompt:  "What feature allows flexible transaction authentication on Aptos?",
		Answer:  "keyless",
		Hint:    "Removes the need for traditional private key management",
		MaxTime: 45,
	},
	{
		ID:      "m7",
		Tier:    tier.T2,
		Story:   "Deep in the protocol, a DeFi primitive enables complex trading...",
		Prompt:  "What is the order book DEX protocol on Aptos?",
		Answer:  "econia",
		Hint:    "Same as the lending protocol, it's multi-functional",
		MaxTime: 45,
	},
	{
		ID:      "m8",
		Tier:    tier.T2,
		Story:   "The phantom ledger whispers of yield strategies and farming...",
		Prompt:  "What is a popular yield farming protocol on Aptos?",
		Answer:  "thala",
		Hint:    "Named after a concept from ancient Indian philosophy",
		MaxTime: 45,
	},
	// Adept
	{
		ID:      "h1",
		Tier:    tier.T3,
		Story:   "The phantom ledger's deepest secrets reveal advanced cryptographic primitives...",
		Prompt:  "What cryptographic signature scheme does Aptos primarily use?",
		Answer:  "ed25519",
		Hint:    "An Edwards curve signature scheme",
		MaxTime: 60,
	},
	{
		ID:      "h2",
		Tier:    tier.T3,
		Story:   "In the Move language's core, a safety mechanism prevents double-spending...",
		Prompt:  "What Move concept ensures resources cannot be copied or dropped?",
		Answer:  "linear-types",
		Hint:    "A type system property that ensures one-time usage",
		MaxTime: 60,
	},
	{
		ID:      "h3",
		Tier:    tier.T3,
		Story:   "The phantom network's consensus reveals its Byzantine fault tolerance...",
		Prompt:  "What percentage of validators can be Byzantine in Aptos BFT?",
		Answer:  "33",
		Hint:    "One-third minus epsilon is the theoretical maximum",
		MaxTime: 60,
	},
	{
		ID:      "h4",
		Tier:    tier.T3,
		Story:   "Deep in the execution layer, a novel approach to state management emerges...",
		Prompt:  "What data structure does Aptos use for state storage?",
		Answer:  "merkle-tree",
		Hint:    "A cryptographic tree structure for efficient verification",
		MaxTime: 60,
	},
	{
		ID:      "h5",
		Tier:    tier.T3,
		Story:   "The cipher reveals the phantom ledger's approach to gas optimization...",
		Prompt:  "What is the gas unit used in Aptos transactions?",
		Answer:  "gas-units",
		Hint:    "The standard unit for computational cost measurement",
		MaxTime: 60,
	},
	{
		ID:      "h6",
		Tier:    tier.T3,
		Story:   "In the Move VM's architecture, bytecode verification ensures safety...",
		Prompt:  "What is the Move bytecode verifier called?",
		Answer:  "move-verifier",
		Hint:    "The component responsible for static analysis",
		MaxTime: 60,
	},
	{
		ID:      "h7",
		Tier:    tier.T3,
		Story:   "The phantom network's parallel execution requires sophisticated ordering...",
		Prompt:  "What algorithm does Aptos use for transaction ordering?",
		Answer:  "block-smt",
		Hint:    "A sparse merkle tree implementation for blocks",
		MaxTime: 60,
	},
	{
		ID:      "h8",
		Tier:    tier.T3,
		Story:   "Deep in the protocol's economic model, validator incentives are encoded...",
		Prompt:  "What is the minimum stake required to become an Aptos validator?",
		Answer:  "1000000",
		Hint:    "One million APT tokens",
		MaxTime: 60,
	},
	// Master
	{
		ID:      "x1",
		Tier:    tier.T4,
		Story:   "The deepest secrets of the phantom ledger reveal the architecture of infinity...",
		Prompt:  "What is the theoretical TPS limit of Aptos with optimal sharding?",
		Answer:  "160000",
		Hint:    "One hundred sixty thousand transactions per second",
		MaxTime: 90,
	},
	{
		ID:      "x2",
		Tier:    tier.T4,
		Story:   "In the Move language's most advanced features, capability-based security emerges...",
		Prompt:  "What Move feature enables fine-grained access control?",
		Answer:  "capabilities",
		Hint:    "A security model based on unforgeable tokens",
		MaxTime: 90,
	},
	{
		ID:      "x3",
		Tier:    tier.T4,
		Story:   "The phantom ledger's consensus algorithm implements a novel voting mechanism...",
		Prompt:  "What is the voting mechanism in AptosBFT consensus?",
		Answer:  "chained-bft",
		Hint:    "A Byzantine fault-tolerant protocol with chaining",
		MaxTime: 90,
	},
	{
		ID:      "x4",
		Tier:    tier.T4,
		Story:   "Deep in the cryptographic foundations, hash functions secure the phantom realm...",
		Prompt:  "What hash function does Aptos use for its Merkle trees?",
		Answer:  "sha3-256",
		Hint:    "The third version of the Secure Hash Algorithm",
		MaxTime: 90,
	},
	{
		ID:      "x5",
		Tier:    tier.T4,
		Story:   "The cipher reveals the phantom network's approach to state pruning...",
		Prompt:  "What is Aptos' state pruning strategy called?",
		Answer:  "epoch-based",
		Hint:    "Pruning occurs at regular epoch intervals",
		MaxTime: 90,
	},
	{
		ID:      "x6",
		Tier:    tier.T4,
		Story:   "In the Move VM's execution model, a novel approach to resource management emerges...",
		Prompt:  "What is the Move VM's approach to memory management?",
		Answer:  "ownership",
		Hint:    "Based on Rust-like ownership semantics",
		MaxTime: 90,
	},
	{
		ID:      "x7",
		Tier:    tier.T4,
		Story:   "The phantom network's parallel execution engine implements advanced scheduling...",
		Prompt:  "What scheduling algorithm enables Aptos' parallel execution?",
		Answer:  "software-transactional-memory",
		Hint:    "STM-based approach to concurrent execution",
		MaxTime: 90,
	},
	{
		ID:      "x8",
		Tier:    tier.T4,
		Story:   "Deep in the protocol's economic incentives, a novel staking mechanism emerges...",
		Prompt:  "What is unique about Aptos' staking reward distribution?",
		Answer:  "dynamic",
		Hint:    "Rewards adjust based on network participation",
		MaxTime: 90,
	},
}
