package blocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
)

// Store is the persistence boundary the composer and the pipeline depend on.
// Implementations must return blocks in a stable order so composition stays
// deterministic for a given store state.
type Store interface {
	Active(ctx context.Context, clusterID string, sectionType analysis.SectionType) ([]Block, error)
	RecordOutcome(ctx context.Context, id uuid.UUID, success bool) error
	SaveLearning(ctx context.Context, learning Learning) error
}

// MemoryStore is an in-memory Store seeded with the starter block library.
// It backs tests and single-node deployments that run without Postgres.
type MemoryStore struct {
	mu        sync.Mutex
	blocks    map[uuid.UUID]*Block
	learnings []Learning
}

// NewMemoryStore returns a MemoryStore seeded with the starter library.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		blocks: make(map[uuid.UUID]*Block),
	}

	for _, seed := range seedBlocks() {
		b := seed
		s.blocks[b.ID] = &b
	}

	return s
}

// Active returns active blocks for the cluster and section type,
// ordered by ID for stable iteration.
func (s *MemoryStore) Active(
	_ context.Context,
	clusterID string,
	sectionType analysis.SectionType,
) ([]Block, error) {
	if !validCluster(clusterID) {
		return nil, ErrInvalidCluster
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Block
	for _, b := range s.blocks {
		if b.Active && b.ClusterID == clusterID && b.Type == sectionType {
			matched = append(matched, *b)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID.String() < matched[j].ID.String()
	})

	return matched, nil
}

// RecordOutcome folds one publish outcome into the block's rolling stats.
func (s *MemoryStore) RecordOutcome(_ context.Context, id uuid.UUID, success bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blocks[id]
	if !ok {
		return ErrNotFound
	}

	b.Performance.record(success)
	return nil
}

// SaveLearning appends an extracted pattern record.
func (s *MemoryStore) SaveLearning(_ context.Context, learning Learning) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.learnings = append(s.learnings, learning)
	return nil
}

// Learnings returns a copy of the accumulated pattern records.
func (s *MemoryStore) Learnings() []Learning {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Learning, len(s.learnings))
	copy(out, s.learnings)
	return out
}

func validCluster(id string) bool {
	for _, c := range Clusters() {
		if c == id {
			return true
		}
	}
	return false
}

// seedID derives a stable UUID for a seed block so the starter library keeps
// the same identities across store rebuilds.
func seedID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("sanchika/blocks/"+name))
}

type seed struct {
	name     string
	cluster  string
	section  analysis.SectionType
	template string
}

func seedBlocks() []Block {
	seeds := []seed{
		{
			name:     "soft-hook-1",
			cluster:  ClusterEmotionalSoft,
			section:  analysis.SectionHook,
			template: "{entity} గురించి వచ్చిన తాజా సమాచారం అభిమానుల మనసులను ఒక్కసారిగా తాకింది. {topic} విషయం తెలిసిన వెంటనే సోషల్ మీడియాలో స్పందనల వెల్లువ మొదలైంది. ఈ వార్త వెనుక ఉన్న పూర్తి కథ ఏమిటో తెలుసుకోవాలని ఎంతోమంది ఆసక్తిగా ఎదురుచూస్తున్నారు.",
		},
		{
			name:     "soft-hook-2",
			cluster:  ClusterEmotionalSoft,
			section:  analysis.SectionHook,
			template: "{topic} విషయం విన్న ప్రతి ఒక్కరి హృదయం ఒక్కసారిగా బరువెక్కింది. {entity} పట్ల ఉన్న ప్రేమ, అభిమానం ఈ సందర్భంలో మరోసారి స్పష్టంగా కనిపించింది. ఈ వార్త అందరి మనసులను కదిలించిందనడంలో ఎలాంటి సందేహం లేదు.",
		},
		{
			name:     "soft-context-1",
			cluster:  ClusterEmotionalSoft,
			section:  analysis.SectionContext,
			template: "కొంతకాలంగా {entity} జీవితంలో జరుగుతున్న పరిణామాలు అభిమానులకు బాగా తెలిసినవే. ఈ నేపథ్యంలో {topic} మరింత ప్రాధాన్యం సంతరించుకుంది. గతంలో జరిగిన సంఘటనలను గుర్తు చేసుకుంటూ ఎంతోమంది ఈ పరిణామాన్ని తమదైన కోణంలో అర్థం చేసుకుంటున్నారు.",
		},
		{
			name:     "soft-detail-1",
			cluster:  ClusterEmotionalSoft,
			section:  analysis.SectionDetail,
			template: "తాజాగా అందిన వివరాల ప్రకారం, {topic} విషయంలో {entity} తీసుకున్న నిర్ణయం ఎంతో ఆలోచించి తీసుకున్నదని సన్నిహితులు చెబుతున్నారు. ఈ నిర్ణయం వెనుక సుదీర్ఘ ఆలోచన, దగ్గరివారి సలహాలు ఉన్నాయని సమాచారం. మరిన్ని వివరాలు త్వరలో వెల్లడికానున్నాయి.",
		},
		{
			name:     "soft-emotion-1",
			cluster:  ClusterEmotionalSoft,
			section:  analysis.SectionEmotion,
			template: "ఈ పరిణామం అభిమానుల్లో మిశ్రమ భావోద్వేగాలను రేకెత్తించింది. ఎంతోమంది {entity} పట్ల తమ ప్రేమను, మద్దతును బహిరంగంగా తెలియజేస్తున్నారు. సోషల్ మీడియా నిండా ఆత్మీయ సందేశాలు, జ్ఞాపకాలు నిండిపోయాయి. ఈ బంధం ఎప్పటికీ చెక్కుచెదరదని అభిమానులు అంటున్నారు.",
		},
		{
			name:     "soft-closing-1",
			cluster:  ClusterEmotionalSoft,
			section:  analysis.SectionClosing,
			template: "{entity} భవిష్యత్తులో మరిన్ని మంచి విషయాలతో అందరి ముందుకు రావాలని అభిమానులు మనస్ఫూర్తిగా కోరుకుంటున్నారు. {topic} గురించి కొత్త సమాచారం అందిన వెంటనే పూర్తి వివరాలతో మీ ముందుకు వస్తాం. అప్పటి వరకు ఈ ప్రయాణంలో మంచి జరగాలని ఆశిద్దాం.",
		},
		{
			name:     "punchy-hook-1",
			cluster:  ClusterPunchyMass,
			section:  analysis.SectionHook,
			template: "{entity} తాజా విషయం తెలుసా? {topic} గురించి ఇప్పుడు అందరూ ఇదే మాట్లాడుకుంటున్నారు! సోషల్ మీడియాలో ఈ అంశం ట్రెండింగ్‌లో దూసుకుపోతోంది. అసలు ఏం జరిగిందో తెలుసుకుంటే మీరూ ఆశ్చర్యపోతారు. పూర్తి వివరాలు ఇవే.",
		},
		{
			name:     "punchy-hook-2",
			cluster:  ClusterPunchyMass,
			section:  analysis.SectionHook,
			template: "{topic} విషయంలో {entity} చేసిన పని చూసి అభిమానులు ఆశ్చర్యపోతున్నారు! ఎవరూ ఊహించని ఈ పరిణామం ఇప్పుడు పెద్ద చర్చకు దారితీసింది. అసలు విషయం ఏమిటంటే, ఇందులో ఇంకా ఎన్నో ఆసక్తికరమైన కోణాలు ఉన్నాయి.",
		},
		{
			name:     "punchy-context-1",
			cluster:  ClusterPunchyMass,
			section:  analysis.SectionContext,
			template: "{entity} అంటే తెలియని వారు ఉండరు. {category} రంగంలో తనదైన ముద్ర వేసి, అభిమానుల మనసుల్లో ప్రత్యేక స్థానం సంపాదించుకున్న పేరు ఇది. అందుకే {topic} గురించి వార్త రాగానే అందరి దృష్టి అటువైపు మళ్లింది. గతంలోనూ ఇలాంటి సందర్భాల్లో భారీ స్పందన కనిపించింది.",
		},
		{
			name:     "punchy-detail-1",
			cluster:  ClusterPunchyMass,
			section:  analysis.SectionDetail,
			template: "ఇప్పుడు {topic} విషయానికి వస్తే, తాజా సమాచారం ప్రకారం పరిస్థితి వేగంగా మారుతోంది. సంబంధిత వర్గాల నుంచి కీలక వివరాలు ఒక్కొక్కటిగా బయటకు వస్తున్నాయి. వీటిపై ఆసక్తి నిమిషనిమిషానికి పెరుగుతోంది. పూర్తి స్పష్టత త్వరలోనే రానుంది.",
		},
		{
			name:     "punchy-emotion-1",
			cluster:  ClusterPunchyMass,
			section:  analysis.SectionEmotion,
			template: "సోషల్ మీడియాలో ఈ అంశంపై దుమారం రేగుతోంది. నెటిజన్లు తమదైన శైలిలో స్పందిస్తున్నారు. కొందరు {entity} కు మద్దతుగా నిలుస్తుండగా, మరికొందరు భిన్నంగా స్పందిస్తున్నారు. మొత్తానికి ఈ చర్చ అంత త్వరగా ఆగేలా కనిపించడం లేదు.",
		},
		{
			name:     "punchy-closing-1",
			cluster:  ClusterPunchyMass,
			section:  analysis.SectionClosing,
			template: "మరి {topic} విషయంలో తదుపరి ఏం జరుగుతుందో చూడాలి. ఈ స్టోరీలో కొత్త ట్విస్ట్ వచ్చే అవకాశం కూడా లేకపోలేదు. తాజా అప్‌డేట్స్ అందిన వెంటనే మీకు చేరవేస్తాం. అప్పటి వరకు వేచి చూద్దాం!",
		},
		{
			name:     "info-hook-1",
			cluster:  ClusterInformative,
			section:  analysis.SectionHook,
			template: "{topic} గురించి తాజా వివరాలు వెలువడ్డాయి. ఈ అంశంపై ప్రజల్లో ఆసక్తి నెలకొన్న నేపథ్యంలో, ఇప్పటి వరకు అందిన సమాచారాన్ని ఒకసారి పరిశీలిద్దాం.",
		},
		{
			name:     "info-context-1",
			cluster:  ClusterInformative,
			section:  analysis.SectionContext,
			template: "{entity} కు సంబంధించిన ఈ అంశం గత కొన్ని రోజులుగా చర్చనీయాంశంగా ఉంది. ఇందుకు సంబంధించిన పూర్వాపరాలు ఇలా ఉన్నాయి. గతంలో జరిగిన పరిణామాలను పరిగణనలోకి తీసుకుంటే, ప్రస్తుత పరిస్థితి ఎలా ఏర్పడిందో అర్థం చేసుకోవచ్చు.",
		},
		{
			name:     "info-detail-1",
			cluster:  ClusterInformative,
			section:  analysis.SectionDetail,
			template: "అందుబాటులో ఉన్న సమాచారం ప్రకారం, {topic} విషయంలో కీలక పరిణామాలు చోటుచేసుకున్నాయి. సంబంధిత వర్గాలు దీనిపై అధికారికంగా స్పందించాల్సి ఉంది. ప్రస్తుతానికి అందిన వివరాల మేరకు పరిస్థితిని నిశితంగా గమనిస్తున్నట్లు తెలుస్తోంది. ధృవీకరణ వచ్చిన తర్వాతే పూర్తి చిత్రం స్పష్టమవుతుంది.",
		},
		{
			name:     "info-emotion-1",
			cluster:  ClusterInformative,
			section:  analysis.SectionEmotion,
			template: "ఈ పరిణామంపై భిన్నాభిప్రాయాలు వ్యక్తమవుతున్నాయి. పలువురు దీనిని సానుకూలంగా చూస్తుండగా, మరికొందరు ఆచితూచి స్పందిస్తున్నారు. మొత్తంగా ప్రజల్లో ఈ అంశంపై ఆసక్తి కొనసాగుతోంది.",
		},
		{
			name:     "info-closing-1",
			cluster:  ClusterInformative,
			section:  analysis.SectionClosing,
			template: "{topic} పై మరింత స్పష్టత రావాల్సి ఉంది. అధికారిక ప్రకటన వెలువడిన వెంటనే పూర్తి వివరాలు తెలియనున్నాయి. అప్పటి వరకు అందుతున్న సమాచారాన్ని జాగ్రత్తగా పరిశీలించడమే సరైన మార్గం.",
		},
	}

	out := make([]Block, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, Block{
			ID:        seedID(s.name),
			Type:      s.section,
			Template:  s.template,
			ClusterID: s.cluster,
			Active:    true,
		})
	}

	return out
}
